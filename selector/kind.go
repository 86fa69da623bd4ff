package selector

// Kind is the type of a selector fragment. The numeric value of a kind is
// its rank in CSS grammar order.
type Kind uint8

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

var kindNames = [...]string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "<unknown>"
}

// Singleton is true for kinds which may occur at most once within a
// simple selector: element, id and pseudo-element.
func (k Kind) Singleton() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

func (k Kind) valid() bool {
	return k <= KindPseudoElement
}

// --- Fragments -------------------------------------------------------------

// Fragment is a typed piece of a selector. Value is passed through verbatim,
// it is not checked against CSS token grammar.
type Fragment struct {
	Kind  Kind
	Value string
}

// String renders a fragment with its kind-specific prefix, e.g. "#main" for
// an id.
func (f Fragment) String() string {
	switch f.Kind {
	case KindElement:
		return f.Value
	case KindID:
		return "#" + f.Value
	case KindClass:
		return "." + f.Value
	case KindAttribute:
		return "[" + f.Value + "]"
	case KindPseudoClass:
		return ":" + f.Value
	case KindPseudoElement:
		return "::" + f.Value
	}
	return ""
}
