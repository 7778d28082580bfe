package render

import (
	"bytes"
	"testing"

	"resume-press/resume/model"
)

func TestRenderProducesPDF(t *testing.T) {
	doc := model.ResumeDocument{
		Name:            "A",
		Contact:         "b@x.com",
		CareerObjective: "Hello world",
	}
	doc.ApplyDefaults()

	out, pages, err := Render(doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if pages != 1 {
		t.Fatalf("expected 1 page, got %d", pages)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF: %q", out[:8])
	}
}

func TestRenderFullDocument(t *testing.T) {
	doc := model.ResumeDocument{
		Name:            "Ada Lovelace",
		Contact:         "London | +44 000 | ada@example.com",
		CareerObjective: "Apply analytical rigor to engine programming and ship correct software.",
		SkillsSnapshot: []model.SkillEntry{
			{Label: "Languages", Value: "Go, Python, SQL"},
			{Label: "Practices", Value: "Code review, pairing, incremental delivery"},
		},
		Experience: []model.ExperienceEntry{
			{
				Company:  "Analytical Engines Ltd",
				RoleLine: "Senior Programmer (2019 - present)",
				Bullets: []string{
					"Designed the instruction card pipeline used by every downstream computation.",
					"Cut run time of the Bernoulli number routine by a third.",
				},
			},
		},
		Education: []model.EducationEntry{
			{Degree: "BSc Mathematics", Details: "University of London, 2015"},
			{Degree: "MSc Computation", Details: "University of London, 2017"},
			{Degree: "PhD Computation", Details: "University of London, 2021"},
		},
		Certifications: []string{"Certified Engine Operator"},
		References:     []string{"Charles Babbage, Analytical Engines Ltd, on request."},
	}
	doc.ApplyDefaults()

	out, pages, err := Render(doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if pages < 1 {
		t.Fatalf("expected at least 1 page, got %d", pages)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF")
	}
}
