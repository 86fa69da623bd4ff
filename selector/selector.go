package selector

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrOrderViolation is reported when a fragment is added out of CSS grammar
// order.
var ErrOrderViolation = errors.New("selector parts should be arranged in the following order: " +
	"element, id, class, attribute, pseudo-class, pseudo-element")

// ErrDuplicateSingleton is reported when a second element, id or
// pseudo-element is added to a simple selector.
var ErrDuplicateSingleton = errors.New("element, id and pseudo-element should not occur " +
	"more than one time inside the selector")

// ErrUnknownKind is reported for fragment kinds outside of
// KindElement…KindPseudoElement.
var ErrUnknownKind = errors.New("unknown selector fragment kind")

// Renderer is implemented by simple and compound selectors alike.
// String renders the selector; Err reports an error recorded while
// building it.
type Renderer interface {
	String() string
	Err() error
}

// Selector is a simple selector under construction. Fragments are kept in
// the order they have been added, which by construction is grammar order.
//
// Chaining methods return the receiver. If a call fails, the error is
// recorded at once and the selector is left as it was before the call;
// subsequent chained calls are no-ops. Use Err to check.
//
// The zero value is an empty selector, ready to use.
type Selector struct {
	fragments []Fragment
	last      Kind
	err       error
}

// New creates an empty selector.
func New() *Selector {
	return &Selector{}
}

// Element starts a new selector with a type selector.
func Element(value string) *Selector {
	return New().Element(value)
}

// ID starts a new selector with an id selector.
func ID(value string) *Selector {
	return New().ID(value)
}

// Class starts a new selector with a class selector.
func Class(value string) *Selector {
	return New().Class(value)
}

// Attr starts a new selector with an attribute selector.
func Attr(value string) *Selector {
	return New().Attr(value)
}

// PseudoClass starts a new selector with a pseudo-class.
func PseudoClass(value string) *Selector {
	return New().PseudoClass(value)
}

// PseudoElement starts a new selector with a pseudo-element.
func PseudoElement(value string) *Selector {
	return New().PseudoElement(value)
}

func (s *Selector) Element(value string) *Selector       { return s.chain(KindElement, value) }
func (s *Selector) ID(value string) *Selector            { return s.chain(KindID, value) }
func (s *Selector) Class(value string) *Selector         { return s.chain(KindClass, value) }
func (s *Selector) Attr(value string) *Selector          { return s.chain(KindAttribute, value) }
func (s *Selector) PseudoClass(value string) *Selector   { return s.chain(KindPseudoClass, value) }
func (s *Selector) PseudoElement(value string) *Selector { return s.chain(KindPseudoElement, value) }

func (s *Selector) chain(kind Kind, value string) *Selector {
	if s.err != nil {
		return s
	}
	if err := s.Append(kind, value); err != nil {
		s.err = err
	}
	return s
}

// Append adds a fragment of the given kind. It checks grammar order against
// the previously added fragment and, for singleton kinds, rejects a second
// occurrence. Nothing is changed if an error is returned.
//
// Append is the non-chaining variant of the builder methods. It does not
// record its own errors on the selector, but a selector which already failed
// in a chain stays closed: Append returns the recorded error.
func (s *Selector) Append(kind Kind, value string) error {
	if s.err != nil {
		return s.err
	}
	if !kind.valid() {
		return errors.Wrapf(ErrUnknownKind, "kind %d", kind)
	}
	if len(s.fragments) > 0 && kind < s.last {
		tracer().Debugf("selector %q: %s after %s", s.String(), kind, s.last)
		return errors.Wrapf(ErrOrderViolation, "cannot add %s %q after %s", kind, value, s.last)
	}
	if kind.Singleton() && s.has(kind) {
		tracer().Debugf("selector %q: duplicate %s", s.String(), kind)
		return errors.Wrapf(ErrDuplicateSingleton, "cannot add %s %q", kind, value)
	}
	s.fragments = append(s.fragments, Fragment{Kind: kind, Value: value})
	s.last = kind
	return nil
}

func (s *Selector) has(kind Kind) bool {
	for _, f := range s.fragments {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

// Err returns the error recorded by a failed builder call, if any.
func (s *Selector) Err() error {
	return s.err
}

// Must panics if an error has been recorded and returns s otherwise.
// Useful for selectors given as literals in code, where a build error is a
// programming error.
func (s *Selector) Must() *Selector {
	if s.err != nil {
		panic(s.err)
	}
	return s
}

// Len returns the number of fragments.
func (s *Selector) Len() int {
	return len(s.fragments)
}

// Fragments returns a copy of the fragments in order of appearance.
func (s *Selector) Fragments() []Fragment {
	f := make([]Fragment, len(s.fragments))
	copy(f, s.fragments)
	return f
}

// String renders the selector. Fragments are concatenated without
// separators.
func (s *Selector) String() string {
	var b strings.Builder
	for _, f := range s.fragments {
		b.WriteString(f.String())
	}
	return b.String()
}

var _ Renderer = &Selector{}
