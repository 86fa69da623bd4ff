/*
Package sheet collects CSS rules for selectors built with package selector.

A Sheet wraps a douceur stylesheet. Rules may be added programmatically,
with their preludes rendered from selector.Renderer values, or parsed from
CSS text, e.g. from <style> elements of an HTML document. Rule preludes
may be matched against HTML parse trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sheet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'objkit.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("objkit.sheet")
}
