package render

import "resume-press/resume/model"

// Compose lays the document out into pages of draw primitives in the fixed
// section order: header, divider, objective, skills table, experience,
// education grid, certifications, references. Sections with no content are
// skipped entirely. The decorative border is drawn on the first page only.
func Compose(doc model.ResumeDocument, m Measurer, th Theme) []Page {
	c := newComposer(th, m)
	c.pageBorder()

	left := th.MarginLeft
	contentW := th.ContentWidth()
	y := th.ContentTop()

	c.page().text(left, y, doc.Name, th.NameFont)
	y -= th.NameDrop
	c.page().text(left, y, doc.Contact, th.ContactFont)
	y -= th.ContactDrop

	y = c.divider(left, left+contentW, y)
	y -= th.PostDividerGap

	if doc.CareerObjective != "" {
		y = c.breakIfNeeded(y, th.BreakThreshold)
		y = c.sectionTitle("Career Objective", left, y)
		y = c.paragraph(doc.CareerObjective, left, y, contentW, th.BodyFont, th.BodyLeading)
		y -= th.SectionGap
	}

	if len(doc.SkillsSnapshot) > 0 {
		y = c.breakIfNeeded(y, th.BreakThreshold)
		y = c.sectionTitle("Skills Snapshot", left, y)

		valueX := left + th.SkillLabelWidth + th.SkillLabelGap
		valueW := contentW - th.SkillLabelWidth - th.SkillLabelGap
		for _, item := range doc.SkillsSnapshot {
			y = c.breakIfNeeded(y, th.BreakThreshold)
			c.page().text(left, y, item.Label, th.SkillLabelFont)
			y = c.paragraph(item.Value, valueX, y, valueW, th.BodyFont, th.BodyLeading)
			y -= th.SkillRowGap
		}
		y -= th.SectionGap
	}

	if len(doc.Experience) > 0 {
		y = c.breakIfNeeded(y, th.BreakThreshold)
		y = c.sectionTitle("Experience", left, y)

		for _, exp := range doc.Experience {
			y = c.breakIfNeeded(y, th.BreakThreshold)
			c.page().text(left, y, exp.Company, th.CompanyFont)
			y -= th.CompanyDrop
			y = c.paragraph(exp.RoleLine, left, y, contentW, th.RoleFont, th.BodyLeading)
			y -= th.RoleGap
			y = c.bullets(exp.Bullets, left, y, contentW, th.BodyFont, th.BodyLeading)
			y -= th.ExperienceGap
		}
	}

	if len(doc.Education) > 0 {
		y = c.sectionTitle("Education", left, y)
		y = c.educationGrid(doc.Education, left, y, contentW)
	}

	if len(doc.Certifications) > 0 {
		y = c.breakIfNeeded(y, th.BreakThreshold)
		y = c.sectionTitle("Certifications", left, y)
		y = c.bullets(doc.Certifications, left, y, contentW, th.BodyFont, th.BodyLeading)
		y = c.divider(left, left+contentW, y)
	}

	if len(doc.References) > 0 {
		y = c.breakIfNeeded(y, th.BreakThreshold)
		y = c.sectionTitle("Reference", left, y)
		for _, ref := range doc.References {
			y = c.breakIfNeeded(y, th.BreakThreshold)
			y = c.paragraph(ref, left, y, contentW, th.ReferenceFont, th.ReferenceLeading)
			y -= th.ReferenceGap
		}
	}

	return c.result()
}

// educationGrid lays education entries out two per row. Degree and details
// wrap independently into the column width, concatenate into one line block
// per card, and both blocks in a row are padded to equal length so the cards
// match height. An odd final entry renders alone in the left column.
func (c *composer) educationGrid(entries []model.EducationEntry, left, y, contentW float64) float64 {
	th := c.th
	colW := (contentW - th.ColumnGap) / 2
	innerW := colW - 2*th.CardPadding
	rightX := left + colW + th.ColumnGap

	for i := 0; i < len(entries); i += 2 {
		y = c.breakIfNeeded(y, th.CardBreakThreshold)

		leftLines := append(
			Wrap(c.m, entries[i].Degree, innerW, th.CardFont),
			Wrap(c.m, entries[i].Details, innerW, th.CardFont)...,
		)

		var rightLines []string
		hasRight := i+1 < len(entries)
		if hasRight {
			rightLines = append(
				Wrap(c.m, entries[i+1].Degree, innerW, th.CardFont),
				Wrap(c.m, entries[i+1].Details, innerW, th.CardFont)...,
			)
			leftLines, rightLines = padLines(leftLines, rightLines)
		}

		rowHeight := c.card(leftLines, left, y, colW)
		if hasRight {
			if h := c.card(rightLines, rightX, y, colW); h > rowHeight {
				rowHeight = h
			}
		}

		y -= rowHeight + th.RowGap
	}
	return y
}
