package domain

import (
	"github.com/samber/lo"
)

type Color string

const (
	ColorPurple Color = "whispr-purple"
	ColorTeal   Color = "whispr-teal"
	ColorPink   Color = "whispr-pink"
	ColorBlue   Color = "whispr-blue"
	ColorGreen  Color = "whispr-green"
	ColorYellow Color = "whispr-yellow"
	ColorOrange Color = "whispr-orange"
)

// Palette is the fixed set of post bubble colors.
var Palette = []Color{
	ColorPurple,
	ColorTeal,
	ColorPink,
	ColorBlue,
	ColorGreen,
	ColorYellow,
	ColorOrange,
}

func (c Color) Valid() bool {
	return lo.Contains(Palette, c)
}

// RandomColor picks uniformly from the palette.
func RandomColor() Color {
	return lo.Sample(Palette)
}
