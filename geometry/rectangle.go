// Package geometry holds small value objects shared by tools built around
// selectors.
package geometry

import "fmt"

// Rectangle is a width by height box.
type Rectangle struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewRectangle creates rectangle of given dimensions.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns width multiplied by height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%gx%g", r.Width, r.Height)
}
