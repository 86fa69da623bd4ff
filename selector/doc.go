/*
Package selector builds CSS selector strings.

A selector is assembled fragment by fragment, in the order CSS grammar
demands:

   element#id.class[attr]:pseudo-class::pseudo-element
             \----/\----/\----------/
             may occur several times

Element, id and pseudo-element are singletons: each of them may occur at most
once within a simple selector. Violations are reported eagerly, i.e. by the
call which adds the offending fragment, and leave the builder unchanged.

   s := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
   s.String()   // => a[href$=".png"]:focus

Selectors may be combined with a combinator token (' ', '+', '~', '>'):

   c := selector.Combine(selector.Element("div"), ">", selector.Element("span"))
   c.String()   // => div > span

The token is inserted literally, surrounded by single spaces. A descendant
combinator given as " " therefore renders as three spaces.

Rendered selectors may be compiled with cascadia and matched against
HTML parse trees (see Compile and MatchAll).

Status

Stable API for building and rendering; matching helpers are a first draft.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'objkit.selector'.
func tracer() tracing.Trace {
	return tracing.Select("objkit.selector")
}
