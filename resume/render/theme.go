package render

// All lengths are PDF points. The page coordinate system follows the PDF
// convention: the origin is the bottom-left corner and the layout cursor
// decreases as content is drawn down the page.

const cm = 28.3464567

// Font selects a core font face for measuring and drawing.
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Theme collects every formatting constant of the fixed resume layout.
// DefaultTheme reproduces the reference aesthetic; the composer takes a Theme
// at construction so nothing is hardcoded at the call sites.
type Theme struct {
	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// BreakThreshold is the remaining-space limit below which the composer
	// starts a new page before a section. Education rows use the larger
	// CardBreakThreshold so a bordered card is never split across pages.
	BreakThreshold     float64
	CardBreakThreshold float64

	// MinParagraphGap is subtracted after every paragraph regardless of its
	// line count.
	MinParagraphGap float64

	BorderMargin float64
	BorderWidth  float64

	DividerWidth   float64
	DividerGap     float64
	PostDividerGap float64

	NameFont    Font
	NameDrop    float64
	ContactFont Font
	ContactDrop float64

	TitleFont Font
	TitleDrop float64

	BodyFont    Font
	BodyLeading float64
	SectionGap  float64

	SkillLabelFont  Font
	SkillLabelWidth float64
	SkillLabelGap   float64
	SkillRowGap     float64

	CompanyFont   Font
	CompanyDrop   float64
	RoleFont      Font
	RoleGap       float64
	ExperienceGap float64

	BulletIndent float64

	CardFont    Font
	CardLeading float64
	CardLineGap float64
	CardPadding float64
	ColumnGap   float64
	RowGap      float64

	ReferenceFont    Font
	ReferenceLeading float64
	ReferenceGap     float64
}

// DefaultTheme returns the fixed A4 layout used for every generated resume.
func DefaultTheme() Theme {
	return Theme{
		PageWidth:  595.28,
		PageHeight: 841.89,

		MarginLeft:   0.5 * cm,
		MarginRight:  0.5 * cm,
		MarginTop:    0.75 * cm,
		MarginBottom: 0,

		BreakThreshold:     2 * cm,
		CardBreakThreshold: 4 * cm,

		MinParagraphGap: 0.8,

		BorderMargin: 0.2 * cm,
		BorderWidth:  0.5,

		DividerWidth:   0.7,
		DividerGap:     8,
		PostDividerGap: 3,

		NameFont:    Font{Family: "Helvetica", Style: "B", Size: 16},
		NameDrop:    15,
		ContactFont: Font{Family: "Helvetica", Size: 9},
		ContactDrop: 8,

		TitleFont: Font{Family: "Helvetica", Style: "B", Size: 11},
		TitleDrop: 14,

		BodyFont:    Font{Family: "Helvetica", Size: 10},
		BodyLeading: 12,
		SectionGap:  10,

		SkillLabelFont:  Font{Family: "Helvetica", Style: "B", Size: 10},
		SkillLabelWidth: 4.2 * cm,
		SkillLabelGap:   0.6 * cm,
		SkillRowGap:     2,

		CompanyFont:   Font{Family: "Helvetica", Style: "B", Size: 10.5},
		CompanyDrop:   13,
		RoleFont:      Font{Family: "Helvetica", Style: "B", Size: 10},
		RoleGap:       2,
		ExperienceGap: 6,

		BulletIndent: 10,

		CardFont:    Font{Family: "Helvetica", Size: 8.5},
		CardLeading: 11,
		CardLineGap: 0,
		CardPadding: 6,
		ColumnGap:   0.6 * cm,
		RowGap:      10,

		ReferenceFont:    Font{Family: "Helvetica", Size: 8},
		ReferenceLeading: 6,
		ReferenceGap:     4,
	}
}

// ContentWidth is the usable width between the horizontal margins.
func (t Theme) ContentWidth() float64 {
	return t.PageWidth - t.MarginLeft - t.MarginRight
}

// ContentTop is the cursor position at the start of a page.
func (t Theme) ContentTop() float64 {
	return t.PageHeight - t.MarginTop
}
