package objects

// Rectangle is a value object with a width and a height.
type Rectangle[N Number] struct {
	Width  N `json:"width"`
	Height N `json:"height"`
}

// NewRectangle creates a rectangle of the given dimensions.
func NewRectangle[N Number](width, height N) Rectangle[N] {
	return Rectangle[N]{Width: width, Height: height}
}

// Area returns width × height.
func (r Rectangle[N]) Area() N {
	return r.Width * r.Height
}
