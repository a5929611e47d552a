// Package frontmatter splits a resume source document into its delimited
// metadata block and markdown body. Malformed metadata is a hard failure:
// at build time a broken resume source aborts the build.
package frontmatter

import (
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// yamlFormat restricts parsing to "---" delimited YAML blocks. The default
// format set would also accept TOML and JSON fences, which resume sources
// never use.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Matter holds the typed metadata of a resume source. Optional URL fields
// are pointers so the validator can tell a declared-but-empty value apart
// from an absent key; the schema requires them to be declared, empty string
// meaning "not provided".
type Matter struct {
	Name        string  `yaml:"name"`
	Title       string  `yaml:"title"`
	Email       string  `yaml:"email"`
	Phone       string  `yaml:"phone"`
	Website     *string `yaml:"website"`
	LinkedIn    *string `yaml:"linkedin"`
	GitHub      *string `yaml:"github"`
	Location    string  `yaml:"location"`
	Summary     string  `yaml:"summary"`
	LastUpdated string  `yaml:"lastUpdated"`

	// Extra carries arbitrary additional keys through unmodified.
	Extra map[string]any `yaml:",inline"`
}

// Parsed is the result of splitting a source document.
type Parsed struct {
	Matter Matter
	Body   string
}

// Parse splits raw document text into metadata and body. It fails with a
// *FormatError unless the text begins with a "---" delimited block; an
// explicitly empty block is accepted, a missing one is not. No recovery is
// attempted on malformed YAML.
func Parse(text string) (*Parsed, error) {
	var matter Matter
	rest, err := frontmatter.MustParse(strings.NewReader(text), &matter, yamlFormat)
	if err != nil {
		if err == frontmatter.ErrNotFound {
			return nil, &FormatError{Message: "document does not begin with a metadata block"}
		}
		return nil, &FormatError{Message: "failed to parse metadata block", Cause: err}
	}

	return &Parsed{
		Matter: matter,
		Body:   string(rest),
	}, nil
}
