package frontmatter

import (
	"errors"
	"strings"
	"time"
)

// Format tags which of the two accepted notations a file used.
type Format string

const (
	// FormatTOML is the curly-style block: opened and closed by "+++",
	// "key = value" assignments, taxonomies nested under [taxonomies].
	FormatTOML Format = "toml"

	// FormatYAML is the dash-style block: opened and closed by "---",
	// "key: value" lines, taxonomies as flat top-level keys.
	FormatYAML Format = "yaml"
)

var (
	ErrNoFrontMatter = errors.New("file does not start with a front matter block")
	ErrUnterminated  = errors.New("front matter block is not terminated")
)

// Matter is the canonical metadata record both notations normalize into.
// Date stays in two shapes: codecs that decode a typed timestamp (TOML
// native dates) set Date, everything else lands in DateRaw for the
// validator to parse. Draft defaults to false when the key is absent.
type Matter struct {
	Title       string
	Description string
	DateRaw     string
	Date        *time.Time
	Draft       bool
	Template    string
	Authors     []string
	Tags        []string
	Categories  []string
	Format      Format
}

const (
	tomlDelimiter = "+++"
	yamlDelimiter = "---"
)

// Split separates a content file into its metadata block and body text.
// The first line picks the notation; the block runs until the matching
// closing delimiter line.
func Split(content string) (Format, string, string, error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")

	var format Format
	var delim string
	switch {
	case strings.HasPrefix(normalized, tomlDelimiter+"\n") || normalized == tomlDelimiter:
		format, delim = FormatTOML, tomlDelimiter
	case strings.HasPrefix(normalized, yamlDelimiter+"\n") || normalized == yamlDelimiter:
		format, delim = FormatYAML, yamlDelimiter
	default:
		return "", "", "", ErrNoFrontMatter
	}

	lines := strings.Split(normalized, "\n")

	// The closing delimiter must stand alone on its line; "---foo" is text.
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == delim {
			end = i
			break
		}
	}
	if end == -1 {
		return "", "", "", ErrUnterminated
	}

	block := strings.Join(lines[1:end], "\n")
	body := strings.Join(lines[end+1:], "\n")
	body = strings.TrimPrefix(body, "\n")

	return format, block, body, nil
}

// Parse splits a content file and decodes its metadata block into the
// canonical Matter record.
func Parse(content string) (*Matter, string, error) {
	format, block, body, err := Split(content)
	if err != nil {
		return nil, "", err
	}

	var matter *Matter
	switch format {
	case FormatTOML:
		matter, err = decodeTOML(block)
	case FormatYAML:
		matter, err = decodeYAML(block)
	}
	if err != nil {
		return nil, "", err
	}

	matter.Format = format
	return matter, body, nil
}
