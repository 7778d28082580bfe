package model

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	// DefaultName is rendered in the header when the document carries no name.
	DefaultName = "YOUR NAME"
	// DefaultContact is rendered under the name when no contact line is given.
	DefaultContact = "Location | Phone | Email"
)

// ResumeDocument is the canonical resume payload. Every field is optional in
// the stored JSON; ApplyDefaults resolves the fallbacks once at load time so
// the renderer never has to.
type ResumeDocument struct {
	Name            string            `json:"name"`
	Contact         string            `json:"contact"`
	CareerObjective string            `json:"career_objective"`
	SkillsSnapshot  []SkillEntry      `json:"skills_snapshot"`
	Experience      []ExperienceEntry `json:"experience"`
	Education       []EducationEntry  `json:"education"`
	Certifications  []string          `json:"certifications"`
	References      []string          `json:"references"`
}

// SkillEntry is one label/value row of the skills snapshot table.
type SkillEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ExperienceEntry is one employment block: company, a role line and bullets.
type ExperienceEntry struct {
	Company  string   `json:"company"`
	RoleLine string   `json:"role_line"`
	Bullets  []string `json:"bullets"`
}

// EducationEntry is one card of the two-column education grid.
type EducationEntry struct {
	Degree  string `json:"degree"`
	Details string `json:"details"`
}

// Parse decodes a resume document from JSON and resolves defaults.
// Unknown keys are ignored.
func Parse(data []byte) (ResumeDocument, error) {
	var doc ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return ResumeDocument{}, fmt.Errorf("parse resume: %w", err)
	}
	doc.ApplyDefaults()
	return doc, nil
}

// Load decodes a resume document from a reader and resolves defaults.
func Load(r io.Reader) (ResumeDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ResumeDocument{}, fmt.Errorf("read resume: %w", err)
	}
	return Parse(data)
}

// ApplyDefaults fills the documented fallback values for absent fields.
// It is idempotent and is called once when the document enters the system.
func (d *ResumeDocument) ApplyDefaults() {
	if d.Name == "" {
		d.Name = DefaultName
	}
	if d.Contact == "" {
		d.Contact = DefaultContact
	}
	if d.SkillsSnapshot == nil {
		d.SkillsSnapshot = []SkillEntry{}
	}
	if d.Experience == nil {
		d.Experience = []ExperienceEntry{}
	}
	if d.Education == nil {
		d.Education = []EducationEntry{}
	}
	if d.Certifications == nil {
		d.Certifications = []string{}
	}
	if d.References == nil {
		d.References = []string{}
	}
	for i := range d.Experience {
		if d.Experience[i].Bullets == nil {
			d.Experience[i].Bullets = []string{}
		}
	}
}
