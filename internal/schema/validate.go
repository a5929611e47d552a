// Package schema enforces the field-level rules on parsed resume metadata
// and on the combined document handed to the rendering layer.
package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-site/internal/frontmatter"
	"github.com/jonathan/resume-site/schemas"
)

// validate is a shared validator instance; Var lookups are stateless.
var validate = validator.New(validator.WithRequiredStructEnabled())

// urlFields lists the optional URL keys the schema declares. They must be
// present in the source: an empty string means "not provided", an absent
// key is a violation. Only a valid absolute http(s) URL or "" passes.
var urlFields = []struct {
	name  string
	value func(*frontmatter.Matter) *string
}{
	{"website", func(m *frontmatter.Matter) *string { return m.Website }},
	{"linkedin", func(m *frontmatter.Matter) *string { return m.LinkedIn }},
	{"github", func(m *frontmatter.Matter) *string { return m.GitHub }},
}

// ValidateFrontmatter applies every field rule to the parsed metadata and
// returns a *ValidationError enumerating all failing fields, or nil.
func ValidateFrontmatter(m *frontmatter.Matter) error {
	var errs []FieldError

	if m.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required and must be non-empty"})
	}
	if m.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required and must be non-empty"})
	}

	if m.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required and must be non-empty"})
	} else if err := validate.Var(m.Email, "email"); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: fmt.Sprintf("not a valid email address: %q", m.Email)})
	}

	for _, f := range urlFields {
		v := f.value(m)
		if v == nil {
			errs = append(errs, FieldError{Field: f.name, Message: "must be declared (empty string when not provided)"})
			continue
		}
		if *v == "" {
			continue
		}
		if err := validate.Var(*v, "http_url"); err != nil {
			errs = append(errs, FieldError{Field: f.name, Message: fmt.Sprintf("not a valid absolute URL: %q", *v)})
		}
	}

	if m.LastUpdated == "" {
		errs = append(errs, FieldError{Field: "lastUpdated", Message: "required and must be non-empty"})
	} else if _, err := time.Parse(time.RFC3339, m.LastUpdated); err != nil {
		errs = append(errs, FieldError{Field: "lastUpdated", Message: fmt.Sprintf("not an ISO-8601 timestamp: %q", m.LastUpdated)})
	}

	// The frontmatter schema is authoritative for structural drift; the
	// field rules above overlap it, so schema violations only add fields
	// not already reported.
	schemaErrs, err := matterSchemaViolations(m)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(errs))
	for _, fe := range errs {
		seen[fe.Field] = true
	}
	for _, fe := range schemaErrs {
		if !seen[fe.Field] {
			errs = append(errs, fe)
			seen[fe.Field] = true
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// matterSchemaViolations validates the marshaled metadata against the
// frontmatter schema and maps each violation onto its field name.
func matterSchemaViolations(m *frontmatter.Matter) ([]FieldError, error) {
	payload, err := json.Marshal(matterPayload(m))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frontmatter for schema validation: %w", err)
	}

	schemaContent, err := schemas.Get("resume_frontmatter.schema.json")
	if err != nil {
		return nil, &SchemaLoadError{Name: "resume_frontmatter.schema.json", Message: "schema not embedded", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return nil, &SchemaLoadError{Name: "resume_frontmatter.schema.json", Message: "schema validation failed during load", Cause: err}
	}

	var out []FieldError
	for _, desc := range result.Errors() {
		field := desc.Field()
		// Required-key violations report at the root; attribute them to
		// the missing property.
		if field == "(root)" {
			if p, ok := desc.Details()["property"].(string); ok {
				field = p
			}
		}
		out = append(out, FieldError{Field: field, Message: desc.Description()})
	}
	return out, nil
}

// IsValidFrontmatter is the non-throwing companion predicate.
func IsValidFrontmatter(m *frontmatter.Matter) bool {
	return ValidateFrontmatter(m) == nil
}

// documentPayload is the JSON shape validated against the document schema.
type documentPayload struct {
	Frontmatter documentMatter `json:"frontmatter"`
	Content     string         `json:"content"`
}

// documentMatter flattens Matter into the schema's wire shape. Optional URL
// fields stay pointers so an absent key is absent in JSON too.
type documentMatter struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone,omitempty"`
	Website     *string `json:"website,omitempty"`
	LinkedIn    *string `json:"linkedin,omitempty"`
	GitHub      *string `json:"github,omitempty"`
	Location    string  `json:"location,omitempty"`
	Summary     string  `json:"summary,omitempty"`
	LastUpdated string  `json:"lastUpdated"`
}

// matterPayload flattens parsed metadata into the schema wire shape.
func matterPayload(m *frontmatter.Matter) documentMatter {
	return documentMatter{
		Name:        m.Name,
		Title:       m.Title,
		Email:       m.Email,
		Phone:       m.Phone,
		Website:     m.Website,
		LinkedIn:    m.LinkedIn,
		GitHub:      m.GitHub,
		Location:    m.Location,
		Summary:     m.Summary,
		LastUpdated: m.LastUpdated,
	}
}

// ValidateDocument validates the combined frontmatter + content document.
// It re-applies the field rules and additionally checks the combined shape
// against the embedded JSON Schema (content must be a string; empty is
// allowed).
func ValidateDocument(m *frontmatter.Matter, content string) error {
	if err := ValidateFrontmatter(m); err != nil {
		return err
	}

	payload := documentPayload{
		Frontmatter: matterPayload(m),
		Content:     content,
	}

	doc, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal document for schema validation: %w", err)
	}

	schemaContent, err := schemas.Get("resume_document.schema.json")
	if err != nil {
		return &SchemaLoadError{Name: "resume_document.schema.json", Message: "schema not embedded", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return &SchemaLoadError{Name: "resume_document.schema.json", Message: "schema validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
