package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"resume-press/resume/model"
)

// backend wraps one fpdf document, acting as the Measurer during composition
// and as the painter afterwards, so measuring and drawing share the same
// glyph metrics.
type backend struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	th  Theme
}

func newBackend(th Theme) *backend {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	return &backend{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		th:  th,
	}
}

// TextWidth measures text with real font metrics.
func (b *backend) TextWidth(text string, font Font) float64 {
	b.pdf.SetFont(font.Family, font.Style, font.Size)
	return b.pdf.GetStringWidth(b.tr(text))
}

// paint draws the composed pages. Primitives carry bottom-left-origin
// coordinates; fpdf draws from the top-left, so y flips against the page
// height here and nowhere else.
func (b *backend) paint(pages []Page) ([]byte, error) {
	pdf, th := b.pdf, b.th
	pdf.SetDrawColor(0, 0, 0)

	for _, page := range pages {
		pdf.AddPage()
		for _, r := range page.Rects {
			pdf.SetLineWidth(r.LineWidth)
			pdf.Rect(r.X, th.PageHeight-(r.Y+r.H), r.W, r.H, "D")
		}
		for _, l := range page.Rules {
			pdf.SetLineWidth(l.Width)
			pdf.Line(l.X1, th.PageHeight-l.Y1, l.X2, th.PageHeight-l.Y2)
		}
		for _, t := range page.Texts {
			pdf.SetFont(t.Font.Family, t.Font.Style, t.Font.Size)
			pdf.Text(t.X, th.PageHeight-t.Y, b.tr(t.Content))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Render lays the document out with the default theme and paints it to PDF.
// It returns the PDF bytes and the page count.
func Render(doc model.ResumeDocument) ([]byte, int, error) {
	return RenderWithTheme(doc, DefaultTheme())
}

// RenderWithTheme renders with an explicit theme.
func RenderWithTheme(doc model.ResumeDocument, th Theme) ([]byte, int, error) {
	b := newBackend(th)
	pages := Compose(doc, b, th)
	out, err := b.paint(pages)
	if err != nil {
		return nil, 0, err
	}
	return out, len(pages), nil
}
