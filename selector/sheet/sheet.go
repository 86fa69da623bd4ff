package sheet

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/objkit/selector"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrParse is reported for CSS text douceur cannot parse.
var ErrParse = errors.New("cannot parse stylesheet")

// Sheet is a list of CSS rules.
type Sheet struct {
	css css.Stylesheet
}

// New creates an empty stylesheet.
func New() *Sheet {
	return &Sheet{}
}

// Wrap a douceur.css.Stylesheet into a Sheet.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *Sheet {
	if css == nil {
		return New()
	}
	return &Sheet{*css}
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*Sheet, error) {
	c, err := parser.Parse(text)
	if err != nil {
		tracer().Debugf("douceur: %v", err)
		return nil, errors.Wrap(ErrParse, err.Error())
	}
	return Wrap(c), nil
}

// Decl creates a declaration for use with Add.
func Decl(property, value string) *css.Declaration {
	return &css.Declaration{Property: property, Value: value}
}

// Important creates a declaration marked as !important.
func Important(property, value string) *css.Declaration {
	return &css.Declaration{Property: property, Value: value, Important: true}
}

// Add appends a rule for sel with the given declarations. A selector
// carrying a build error is not accepted.
func (sheet *Sheet) Add(sel selector.Renderer, decls ...*css.Declaration) error {
	if sel == nil {
		return errors.New("cannot add rule for nil selector")
	}
	if err := sel.Err(); err != nil {
		return errors.Wrap(err, "cannot add rule")
	}
	prelude := sel.String()
	rule := css.NewRule(css.QualifiedRule)
	rule.Prelude = prelude
	rule.Selectors = []string{prelude}
	rule.Declarations = append(rule.Declarations, decls...)
	sheet.css.Rules = append(sheet.css.Rules, rule)
	tracer().Debugf("sheet: added rule for %q with %d declarations", prelude, len(decls))
	return nil
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Sheet) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *Sheet) AppendRules(other *Sheet) {
	if other == nil {
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, other.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet, in order.
// At-rules are skipped.
func (sheet *Sheet) Rules() []Rule {
	rules := make([]Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

// RulesFor returns the rules whose prelude equals the rendering of sel.
func (sheet *Sheet) RulesFor(sel selector.Renderer) []Rule {
	var rules []Rule
	if sel == nil || sel.Err() != nil {
		return rules
	}
	s := sel.String()
	for _, r := range sheet.Rules() {
		if r.Selector() == s {
			rules = append(rules, r)
		}
	}
	return rules
}

// String renders the stylesheet as CSS text.
func (sheet *Sheet) String() string {
	return sheet.css.String()
}

// Select returns all nodes below doc matched by the prelude of rule.
// Preludes may contain a group of comma-separated selectors.
func (sheet *Sheet) Select(doc *html.Node, rule Rule) ([]*html.Node, error) {
	group, err := cascadia.ParseGroup(rule.Selector())
	if err != nil {
		return nil, errors.Wrapf(selector.ErrCompile, "%q: %v", rule.Selector(), err)
	}
	return cascadia.QueryAll(doc, group), nil
}

// --- Rules -----------------------------------------------------------------

// Rule is a qualified CSS rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	if r.Prelude != "" {
		return r.Prelude
	}
	return strings.Join(r.Selectors, ", ")
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for a given key, e.g. "15px".
// The last declaration wins.
func (r Rule) Value(key string) string {
	v := ""
	for _, d := range r.Declarations {
		if d.Property == key {
			v = d.Value
		}
	}
	return v
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// --- HTML ------------------------------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which fail to parse are
// skipped.
func ExtractStyleElements(htmldoc *html.Node) []*Sheet {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets := extractStyles(head)
	return append(sheets, extractStyles(body)...)
}

func extractStyles(h *html.Node) []*Sheet {
	var sheets []*Sheet
	if h == nil {
		return sheets
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		s, err := Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Errorf("skipping <style>: %v", err)
			continue
		}
		sheets = append(sheets, s)
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
