package editor

// resumeSchema constrains the shape of a submitted resume document. Unknown
// keys are allowed and ignored by the model layer.
const resumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "contact": {"type": "string"},
    "career_objective": {"type": "string"},
    "skills_snapshot": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "label": {"type": "string"},
          "value": {"type": "string"}
        }
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": "string"},
          "role_line": {"type": "string"},
          "bullets": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree": {"type": "string"},
          "details": {"type": "string"}
        }
      }
    },
    "certifications": {"type": "array", "items": {"type": "string"}},
    "references": {"type": "array", "items": {"type": "string"}}
  }
}`
