package render

// Draw primitives accumulated during composition. Pages are append-only; the
// PDF painter walks them in order after layout is complete, which keeps the
// layout logic testable without decoding PDF output.

// Text is a single line drawn with its baseline at Y.
type Text struct {
	X, Y    float64
	Content string
	Font    Font
}

// Rule is a straight line of a fixed stroke width.
type Rule struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

// Rect is an unfilled rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
	LineWidth  float64
}

// Page holds the primitives of one rendered page.
type Page struct {
	Texts []Text
	Rules []Rule
	Rects []Rect
}

func (p *Page) text(x, y float64, content string, font Font) {
	p.Texts = append(p.Texts, Text{X: x, Y: y, Content: content, Font: font})
}

func (p *Page) rule(x1, y1, x2, y2, width float64) {
	p.Rules = append(p.Rules, Rule{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width})
}

func (p *Page) rect(x, y, w, h, lineWidth float64) {
	p.Rects = append(p.Rects, Rect{X: x, Y: y, W: w, H: h, LineWidth: lineWidth})
}
