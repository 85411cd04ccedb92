package engine

// DefaultFont is the font family the default stylesheet assigns to every
// text node.
const DefaultFont = "Times New Roman"

type styleRule struct {
	size   float64
	margin float64
	bold   bool
}

// Margins and font sizes taken from Chrome dev tools defaults.
var defaultStyles = map[string]styleRule{
	"h1": {size: 37, margin: 10.72, bold: true},
	"h2": {size: 27.5, margin: 9.96, bold: true},
	"h3": {size: 21.5, margin: 9.36, bold: true},
	"h4": {size: 18.5, margin: 10.64, bold: true},
	"h5": {size: 15.5, margin: 11.089, bold: true},
	"h6": {size: 12, margin: 12.489, bold: true},
	"p":  {size: 18.5, margin: 8, bold: false},
}
