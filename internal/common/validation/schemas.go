package validation

var schemaSources = map[string]string{
	SchemaJob:           jobSchema,
	SchemaProfileUpdate: profileUpdateSchema,
}

const jobSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title"],
  "properties": {
    "id":          {"type": "integer"},
    "title":       {"type": "string", "minLength": 1},
    "company":     {"type": "string"},
    "description": {"type": "string"},
    "skills":      {"type": "array", "items": {"type": "string"}},
    "url":         {"type": "string"},
    "location":    {"type": "string"},
    "jobType":     {"type": "string"},
    "salary":      {"type": "number", "minimum": 0},
    "recruiterId": {"type": "integer"}
  },
  "additionalProperties": true
}`

const profileUpdateSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "password":      {"type": "string", "minLength": 1},
    "email":         {"type": "string", "format": "email"},
    "phone":         {"type": "string"},
    "bio":           {"type": "string"},
    "linkedin":      {"type": "string"},
    "github":        {"type": "string"},
    "avatarDataUrl": {"type": "string"},
    "fullName":      {"type": "string"},
    "jobTitle":      {"type": "string"},
    "careerLevel":   {"type": "string"},
    "workType":      {"type": "string"},
    "employmentType":{"type": "string"},
    "preferredLocations": {"type": "array", "items": {"type": "string"}},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["years"],
        "properties": {
          "years":     {"type": "number", "minimum": 0},
          "companies": {"type": "array", "items": {"type": "string"}},
          "summary":   {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree":      {"type": "string"},
          "college":     {"type": "string"},
          "passingYear": {"type": "integer"}
        }
      }
    },
    "expectedSalaryRange": {
      "type": "object",
      "properties": {
        "min": {"type": "number"},
        "max": {"type": "number"}
      }
    },
    "achievements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title":       {"type": "string"},
          "description": {"type": "string"},
          "year":        {"type": "integer"}
        }
      }
    }
  },
  "additionalProperties": false
}`
