package render

import (
	"fmt"
	"testing"

	"resume-press/resume/model"
)

func composeDoc(t *testing.T, doc model.ResumeDocument) []Page {
	t.Helper()
	doc.ApplyDefaults()
	return Compose(doc, fixedMeasurer{advance: 6}, DefaultTheme())
}

func hasText(pages []Page, content string) bool {
	for _, page := range pages {
		for _, txt := range page.Texts {
			if txt.Content == content {
				return true
			}
		}
	}
	return false
}

func countRects(pages []Page) int {
	n := 0
	for _, page := range pages {
		n += len(page.Rects)
	}
	return n
}

func TestComposeMinimalDocumentSinglePage(t *testing.T) {
	pages := composeDoc(t, model.ResumeDocument{
		Name:            "A",
		Contact:         "b@x.com",
		CareerObjective: "Hello world",
	})

	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	for _, want := range []string{"A", "b@x.com", "CAREER OBJECTIVE", "Hello world"} {
		if !hasText(pages, want) {
			t.Fatalf("expected text %q on the page", want)
		}
	}
	for _, absent := range []string{"SKILLS SNAPSHOT", "EXPERIENCE", "EDUCATION", "CERTIFICATIONS", "REFERENCE"} {
		if hasText(pages, absent) {
			t.Fatalf("did not expect empty section title %q", absent)
		}
	}
	if countRects(pages) != 1 {
		t.Fatalf("expected only the page border rect, got %d rects", countRects(pages))
	}
}

func TestComposeEducationGridPairsRows(t *testing.T) {
	pages := composeDoc(t, model.ResumeDocument{
		Name: "A",
		Education: []model.EducationEntry{
			{Degree: "BSc Computer Science", Details: "First University, 2015"},
			{Degree: "MSc Data Engineering", Details: "Second University, 2017, with a considerably longer details line that wraps"},
			{Degree: "PhD", Details: "Third University"},
		},
	})

	var cards []Rect
	for _, page := range pages {
		cards = append(cards, page.Rects...)
	}
	// First rect is the page border.
	cards = cards[1:]
	if len(cards) != 3 {
		t.Fatalf("expected 3 education cards, got %d", len(cards))
	}

	rowTop := func(r Rect) float64 { return r.Y + r.H }
	if rowTop(cards[0]) != rowTop(cards[1]) {
		t.Fatalf("first row cards not aligned: %.2f vs %.2f", rowTop(cards[0]), rowTop(cards[1]))
	}
	if cards[0].H != cards[1].H {
		t.Fatalf("first row cards differ in height: %.2f vs %.2f", cards[0].H, cards[1].H)
	}
	if rowTop(cards[2]) >= rowTop(cards[0]) {
		t.Fatalf("second row not below first: %.2f vs %.2f", rowTop(cards[2]), rowTop(cards[0]))
	}
	if cards[2].X != cards[0].X {
		t.Fatalf("odd final card not in the left column: %.2f vs %.2f", cards[2].X, cards[0].X)
	}
}

func TestComposeCardRowHeightsMatchDespiteUnevenContent(t *testing.T) {
	pages := composeDoc(t, model.ResumeDocument{
		Name: "A",
		Education: []model.EducationEntry{
			{Degree: "Short", Details: "One line"},
			{Degree: "Long degree title that certainly wraps over several lines in a narrow column",
				Details: "And details long enough to wrap onto multiple lines as well, padding the neighbor"},
		},
	})

	var cards []Rect
	for _, page := range pages {
		cards = append(cards, page.Rects...)
	}
	cards = cards[1:]
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].H != cards[1].H {
		t.Fatalf("paired cards differ in height: %.2f vs %.2f", cards[0].H, cards[1].H)
	}
}

func TestComposeBreaksPagesWithoutOverflow(t *testing.T) {
	var experience []model.ExperienceEntry
	for i := 0; i < 30; i++ {
		experience = append(experience, model.ExperienceEntry{
			Company:  fmt.Sprintf("Company %d", i),
			RoleLine: "Engineer",
			Bullets:  []string{"Shipped a feature"},
		})
	}
	pages := composeDoc(t, model.ResumeDocument{Name: "A", Experience: experience})

	if len(pages) < 2 {
		t.Fatalf("expected multiple pages, got %d", len(pages))
	}

	th := DefaultTheme()
	for i, page := range pages {
		for _, txt := range page.Texts {
			if txt.Y < th.MarginBottom {
				t.Fatalf("page %d text %q drawn below the bottom margin at %.2f", i+1, txt.Content, txt.Y)
			}
			if txt.Y > th.ContentTop() {
				t.Fatalf("page %d text %q drawn above the content top at %.2f", i+1, txt.Content, txt.Y)
			}
		}
	}

	// The decorative border stays on the first page only.
	if len(pages[0].Rects) != 1 {
		t.Fatalf("expected the border rect on page 1, got %d rects", len(pages[0].Rects))
	}
	if countRects(pages[1:]) != 0 {
		t.Fatalf("expected no border on later pages, got %d rects", countRects(pages[1:]))
	}
}

func TestComposeNeverSplitsACardAcrossPages(t *testing.T) {
	var education []model.EducationEntry
	for i := 0; i < 20; i++ {
		education = append(education, model.EducationEntry{
			Degree:  fmt.Sprintf("Degree number %d with a title that wraps in the column", i),
			Details: "Institution and a detail line that also wraps across the narrow card width",
		})
	}
	pages := composeDoc(t, model.ResumeDocument{Name: "A", Education: education})

	if len(pages) < 2 {
		t.Fatalf("expected multiple pages, got %d", len(pages))
	}
	for i, page := range pages {
		rects := page.Rects
		if i == 0 {
			rects = rects[1:] // skip the page border
		}
		for _, r := range rects {
			if r.Y < 0 {
				t.Fatalf("page %d card extends past the page bottom: y=%.2f", i+1, r.Y)
			}
		}
	}
}

func TestComposeSkillsTableLayout(t *testing.T) {
	pages := composeDoc(t, model.ResumeDocument{
		Name: "A",
		SkillsSnapshot: []model.SkillEntry{
			{Label: "Languages", Value: "Go, Python"},
			{Label: "Databases", Value: "PostgreSQL"},
		},
	})

	if !hasText(pages, "SKILLS SNAPSHOT") {
		t.Fatalf("expected skills title")
	}

	th := DefaultTheme()
	valueX := th.MarginLeft + th.SkillLabelWidth + th.SkillLabelGap
	var labelX, gotValueX float64
	for _, txt := range pages[0].Texts {
		switch txt.Content {
		case "Languages":
			labelX = txt.X
		case "Go, Python":
			gotValueX = txt.X
		}
	}
	if labelX != th.MarginLeft {
		t.Fatalf("label not at the left margin: %.2f", labelX)
	}
	if gotValueX != valueX {
		t.Fatalf("value not in the value column: got %.2f, want %.2f", gotValueX, valueX)
	}
}
