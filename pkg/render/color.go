package render

import "image/color"

// debugColor is the outline color for DrawRectangle.
var debugColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}
