package selector

import (
	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ErrCompile is reported if a rendered selector is not accepted by the
// selector engine. Fragment values are not validated while building, so
// this is where malformed payloads surface.
var ErrCompile = errors.New("cannot compile selector")

// Compile renders r and compiles the result into a cascadia selector.
// A build error recorded on r is returned unchanged.
func Compile(r Renderer) (cascadia.Sel, error) {
	if r == nil {
		return nil, errors.Wrap(ErrCompile, "nil selector")
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	s := r.String()
	sel, err := cascadia.Parse(s)
	if err != nil {
		tracer().Debugf("cascadia rejects %q: %v", s, err)
		return nil, errors.Wrapf(ErrCompile, "%q: %v", s, err)
	}
	return sel, nil
}

// MatchAll returns all nodes below doc matched by r, in document order.
func MatchAll(r Renderer, doc *html.Node) ([]*html.Node, error) {
	sel, err := Compile(r)
	if err != nil {
		return nil, err
	}
	return cascadia.QueryAll(doc, sel), nil
}

// MatchFirst returns the first node below doc matched by r, or nil.
func MatchFirst(r Renderer, doc *html.Node) (*html.Node, error) {
	sel, err := Compile(r)
	if err != nil {
		return nil, err
	}
	return cascadia.Query(doc, sel), nil
}
