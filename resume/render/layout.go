package render

import "strings"

// composer owns the page list and the single authoritative cursor during one
// render pass. Every layout op takes a cursor value and returns the new one;
// nothing here is shared across renders.
type composer struct {
	th    Theme
	m     Measurer
	pages []*Page
}

func newComposer(th Theme, m Measurer) *composer {
	c := &composer{th: th, m: m}
	c.newPage()
	return c
}

func (c *composer) page() *Page {
	return c.pages[len(c.pages)-1]
}

func (c *composer) newPage() {
	c.pages = append(c.pages, &Page{})
}

func (c *composer) result() []Page {
	out := make([]Page, len(c.pages))
	for i, p := range c.pages {
		out[i] = *p
	}
	return out
}

// breakIfNeeded starts a new page when the remaining space above the bottom
// margin falls below threshold, resetting the cursor to the content top.
func (c *composer) breakIfNeeded(y, threshold float64) float64 {
	if y < c.th.MarginBottom+threshold {
		c.newPage()
		return c.th.ContentTop()
	}
	return y
}

// paragraph wraps text into maxWidth and draws each line at decreasing y
// separated by leading, then subtracts the blanket minimum paragraph gap.
func (c *composer) paragraph(text string, x, y, maxWidth float64, font Font, leading float64) float64 {
	for _, line := range Wrap(c.m, text, maxWidth, font) {
		c.page().text(x, y, line, font)
		y -= leading
	}
	return y - c.th.MinParagraphGap
}

// bullets draws a marker at the left edge and the wrapped item text indented
// next to it, with an extra gap between items. An empty list draws nothing
// and returns y unchanged.
func (c *composer) bullets(items []string, x, y, maxWidth float64, font Font, leading float64) float64 {
	for _, item := range items {
		c.page().text(x, y, "•", font)
		y = c.paragraph(item, x+c.th.BulletIndent, y, maxWidth-c.th.BulletIndent, font, leading)
		y -= c.th.MinParagraphGap
	}
	return y
}

// sectionTitle draws the upper-cased title and drops the cursor by the fixed
// title height plus gap.
func (c *composer) sectionTitle(title string, x, y float64) float64 {
	c.page().text(x, y, strings.ToUpper(title), c.th.TitleFont)
	return y - (c.th.TitleDrop + c.th.MinParagraphGap)
}

// cardHeight computes the box height for a block of prewrapped lines.
func (c *composer) cardHeight(lines []string) float64 {
	th := c.th
	gaps := 0.0
	if len(lines) > 1 {
		gaps = float64(len(lines)-1) * th.CardLineGap
	}
	return 2*th.CardPadding + float64(len(lines))*th.CardLeading + gaps
}

// card draws a thin bordered box of prewrapped lines with (x, y) as its
// top-left corner and returns the box height. Cards in one row are drawn at
// the same y; the caller advances the cursor from the row height.
func (c *composer) card(lines []string, x, y, width float64) float64 {
	th := c.th
	height := c.cardHeight(lines)
	c.page().rect(x, y-height, width, height, th.BorderWidth)
	ty := y - th.CardPadding - th.CardFont.Size
	for _, line := range lines {
		c.page().text(x+th.CardPadding, ty, line, th.CardFont)
		ty -= th.CardLeading + th.CardLineGap
	}
	return height
}

// divider draws a horizontal rule and drops the cursor by the divider gap.
func (c *composer) divider(x1, x2, y float64) float64 {
	c.page().rule(x1, y, x2, y, c.th.DividerWidth)
	return y - c.th.DividerGap
}

// pageBorder draws the decorative border around the current page.
func (c *composer) pageBorder() {
	th := c.th
	m := th.BorderMargin
	c.page().rect(m, m, th.PageWidth-1.85*m, th.PageHeight-2*m, th.BorderWidth)
}
