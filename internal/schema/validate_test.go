package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-site/internal/frontmatter"
)

func strPtr(s string) *string { return &s }

func validMatter() *frontmatter.Matter {
	return &frontmatter.Matter{
		Name:        "Jane Doe",
		Title:       "Software Engineer",
		Email:       "jane@example.com",
		Phone:       "+1 555 0100",
		Website:     strPtr("https://janedoe.dev"),
		LinkedIn:    strPtr(""),
		GitHub:      strPtr("https://github.com/janedoe"),
		Location:    "Seoul, Korea",
		Summary:     "Engineer.",
		LastUpdated: "2026-08-01T00:00:00Z",
	}
}

func TestValidateFrontmatter_Valid(t *testing.T) {
	m := validMatter()
	assert.NoError(t, ValidateFrontmatter(m))
	assert.True(t, IsValidFrontmatter(m))
}

func TestValidateFrontmatter_RoundTripStability(t *testing.T) {
	// A valid pass must not alter any field.
	m := validMatter()
	before := *m
	require.NoError(t, ValidateFrontmatter(m))
	assert.Equal(t, before, *m)
}

func TestValidateFrontmatter_ReportsAllViolations(t *testing.T) {
	m := &frontmatter.Matter{
		Email:       "not-an-email",
		Website:     strPtr("not a url"),
		LastUpdated: "yesterday",
	}
	err := ValidateFrontmatter(m)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	fields := make(map[string]bool)
	for _, fe := range ve.Errors {
		fields[fe.Field] = true
	}
	// name, title, email, website, linkedin (absent), github (absent), lastUpdated
	assert.True(t, fields["name"])
	assert.True(t, fields["title"])
	assert.True(t, fields["email"])
	assert.True(t, fields["website"])
	assert.True(t, fields["linkedin"])
	assert.True(t, fields["github"])
	assert.True(t, fields["lastUpdated"])
	assert.Len(t, ve.Errors, 7)
}

func TestValidateFrontmatter_AbsentURLFieldRejected(t *testing.T) {
	m := validMatter()
	m.Website = nil
	err := ValidateFrontmatter(m)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "website", ve.Errors[0].Field)
}

func TestValidateFrontmatter_EmptyURLAccepted(t *testing.T) {
	m := validMatter()
	m.Website = strPtr("")
	m.GitHub = strPtr("")
	assert.NoError(t, ValidateFrontmatter(m))
}

func TestValidateFrontmatter_RelativeURLRejected(t *testing.T) {
	m := validMatter()
	m.Website = strPtr("/about")
	assert.Error(t, ValidateFrontmatter(m))
}

func TestValidateFrontmatter_BadTimestamp(t *testing.T) {
	m := validMatter()
	m.LastUpdated = "2026-08-01" // date only, not a timestamp
	assert.Error(t, ValidateFrontmatter(m))
	assert.False(t, IsValidFrontmatter(m))
}

func TestMatterSchemaViolations_AttributedToFields(t *testing.T) {
	m := validMatter()
	m.Website = nil
	m.Name = ""

	errs, err := matterSchemaViolations(m)
	require.NoError(t, err)

	fields := make(map[string]bool)
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["website"], "required-key violations map onto the missing property")
	assert.True(t, fields["name"])
}

func TestMatterSchemaViolations_ValidMatterClean(t *testing.T) {
	errs, err := matterSchemaViolations(validMatter())
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestValidateFrontmatter_OneViolationPerField(t *testing.T) {
	// The field rules and the schema overlap; a failing field must be
	// reported once, not once per layer.
	m := validMatter()
	m.Website = nil
	err := ValidateFrontmatter(m)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	count := 0
	for _, fe := range ve.Errors {
		if fe.Field == "website" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestValidateDocument_Valid(t *testing.T) {
	assert.NoError(t, ValidateDocument(validMatter(), "## Experience\n"))
}

func TestValidateDocument_EmptyContentAllowed(t *testing.T) {
	assert.NoError(t, ValidateDocument(validMatter(), ""))
}

func TestValidateDocument_InvalidMatterFailsFirst(t *testing.T) {
	m := validMatter()
	m.Name = ""
	err := ValidateDocument(m, "body")
	require.Error(t, err)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}
