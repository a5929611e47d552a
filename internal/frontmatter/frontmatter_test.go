package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `---
name: Jane Doe
title: Software Engineer
email: jane@example.com
phone: "+1 555 0100"
website: "https://janedoe.dev"
linkedin: ""
github: "https://github.com/janedoe"
location: Seoul, Korea
summary: Engineer with a focus on web platforms.
lastUpdated: "2026-08-01T00:00:00Z"
customKey: custom value
---

## Experience

**Acme Corp** — Senior Engineer
`

func TestParse_ValidDocument(t *testing.T) {
	parsed, err := Parse(validDoc)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", parsed.Matter.Name)
	assert.Equal(t, "Software Engineer", parsed.Matter.Title)
	assert.Equal(t, "jane@example.com", parsed.Matter.Email)
	assert.Equal(t, "+1 555 0100", parsed.Matter.Phone)
	require.NotNil(t, parsed.Matter.Website)
	assert.Equal(t, "https://janedoe.dev", *parsed.Matter.Website)
	require.NotNil(t, parsed.Matter.LinkedIn)
	assert.Equal(t, "", *parsed.Matter.LinkedIn)
	assert.Equal(t, "2026-08-01T00:00:00Z", parsed.Matter.LastUpdated)
	assert.Contains(t, parsed.Body, "## Experience")
}

func TestParse_ExtraKeysPassThrough(t *testing.T) {
	parsed, err := Parse(validDoc)
	require.NoError(t, err)
	assert.Equal(t, "custom value", parsed.Matter.Extra["customKey"])
}

func TestParse_MissingBlock(t *testing.T) {
	_, err := Parse("# Just a heading\n\nNo metadata here.\n")
	require.Error(t, err)

	var formatErr *FormatError
	assert.True(t, errors.As(err, &formatErr), "expected *FormatError, got %T", err)
}

func TestParse_EmptyBlockAccepted(t *testing.T) {
	parsed, err := Parse("---\n---\n\nbody text\n")
	require.NoError(t, err)
	assert.Equal(t, "", parsed.Matter.Name)
	assert.Contains(t, parsed.Body, "body text")
}

func TestParse_MalformedYAML(t *testing.T) {
	doc := "---\nname: [unclosed\n---\nbody\n"
	_, err := Parse(doc)
	require.Error(t, err)

	var formatErr *FormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestParse_AbsentOptionalURLFieldsAreNil(t *testing.T) {
	doc := "---\nname: Jane Doe\ntitle: Engineer\nemail: jane@example.com\nlastUpdated: \"2026-08-01T00:00:00Z\"\n---\nbody\n"
	parsed, err := Parse(doc)
	require.NoError(t, err)

	// The validator later rejects these as undeclared; the parser only
	// records their absence.
	assert.Nil(t, parsed.Matter.Website)
	assert.Nil(t, parsed.Matter.LinkedIn)
	assert.Nil(t, parsed.Matter.GitHub)
}
