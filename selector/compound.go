package selector

// Compound is a pair of selectors joined by a combinator. Left and Right may
// themselves be compound.
type Compound struct {
	Left       Renderer
	Combinator string
	Right      Renderer
}

// Combine joins two selectors with a combinator token. The token is not
// validated; any string is inserted literally. Neither operand is modified.
func Combine(left Renderer, combinator string, right Renderer) *Compound {
	return &Compound{Left: left, Combinator: combinator, Right: right}
}

// String renders left, combinator and right, separated by single spaces.
func (c *Compound) String() string {
	return render(c.Left) + " " + c.Combinator + " " + render(c.Right)
}

// Err returns the first error recorded by one of the operands.
func (c *Compound) Err() error {
	if c.Left != nil {
		if err := c.Left.Err(); err != nil {
			return err
		}
	}
	if c.Right != nil {
		return c.Right.Err()
	}
	return nil
}

func render(r Renderer) string {
	if r == nil {
		return ""
	}
	return r.String()
}

var _ Renderer = &Compound{}

// --- Matching --------------------------------------------------------------

// Matcher decomposes a Renderer into either a simple or a compound selector:
//
//	var sel *selector.Selector
//	var l, r selector.Renderer
//	var tok string
//	switch m := selector.Match(x); m {
//	case m.Single(&sel):
//	    …
//	case m.Compound(&l, &tok, &r):
//	    …
//	}
type Matcher struct {
	r Renderer
}

// Match returns a matcher for r.
func Match(r Renderer) *Matcher {
	return &Matcher{r: r}
}

// Single matches a simple selector.
func (m *Matcher) Single(s **Selector) *Matcher {
	if sel, ok := m.r.(*Selector); ok {
		if s != nil {
			*s = sel
		}
		return m
	}
	return nil
}

// Compound matches a compound selector, extracting its parts.
func (m *Matcher) Compound(left *Renderer, combinator *string, right *Renderer) *Matcher {
	if c, ok := m.r.(*Compound); ok {
		if left != nil {
			*left = c.Left
		}
		if combinator != nil {
			*combinator = c.Combinator
		}
		if right != nil {
			*right = c.Right
		}
		return m
	}
	return nil
}
