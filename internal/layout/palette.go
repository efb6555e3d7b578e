package layout

import colorful "github.com/lucasb-eyer/go-colorful"

// Palette colours children by index, wrapping around.
var Palette = []colorful.Color{
	{R: 191.0 / 255.0, G: 97.0 / 255.0, B: 106.0 / 255.0},
	{R: 208.0 / 255.0, G: 135.0 / 255.0, B: 112.0 / 255.0},
	{R: 235.0 / 255.0, G: 203.0 / 255.0, B: 139.0 / 255.0},
	{R: 163.0 / 255.0, G: 190.0 / 255.0, B: 140.0 / 255.0},
	{R: 143.0 / 255.0, G: 188.0 / 255.0, B: 187.0 / 255.0},
	{R: 129.0 / 255.0, G: 161.0 / 255.0, B: 193.0 / 255.0},
	{R: 180.0 / 255.0, G: 142.0 / 255.0, B: 173.0 / 255.0},
}

// MarkerColor is used for the player arrow.
var MarkerColor = colorful.Color{R: 1}

func ChildColor(i int) colorful.Color { return Palette[i%len(Palette)] }
