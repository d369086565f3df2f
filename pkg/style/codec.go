package style

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileFormat is the encoding of a style file.
type FileFormat string

const (
	FormatYAML FileFormat = "yaml"
	FormatTOML FileFormat = "toml"
)

// ErrUnknownFormat is returned for style files with an unrecognized
// extension.
var ErrUnknownFormat = errors.New("unknown style file format")

// FormatFor returns the format implied by a file extension.
func FormatFor(path string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadResult is a decoded style file.
type LoadResult struct {
	// Bundle holds the sections present in the file. Options a present
	// section leaves out keep their default values.
	Bundle *Bundle

	// Path is the file the bundle was read from, if any.
	Path string

	// Warnings lists unknown keys and sections that fell back to defaults.
	Warnings []string
}

// LoadFile reads a YAML or TOML style file.
func LoadFile(path string) (*LoadResult, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style file: %w", err)
	}
	res, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// Decode parses style data in the given format.
func Decode(data []byte, format FileFormat) (*LoadResult, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// knownSections are the top-level keys a style file may hold.
//
//nolint:gochecknoglobals // Lookup table.
var knownSections = map[string]bool{
	"name":                true,
	SectionBlankLines:     true,
	SectionSpaces:         true,
	SectionTabsAndIndents: true,
}

func decodeYAML(data []byte) (*LoadResult, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	doc := defaultDocument()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	present := make(map[string]bool, len(raw))
	var warnings []string
	for key := range raw {
		present[key] = true
		if !knownSections[key] {
			warnings = append(warnings, fmt.Sprintf("unknown section %q ignored", key))
		}
	}
	return finish(doc, present, warnings), nil
}

func decodeTOML(data []byte) (*LoadResult, error) {
	doc := defaultDocument()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}

	present := make(map[string]bool)
	for key := range knownSections {
		if md.IsDefined(key) {
			present[key] = true
		}
	}
	var warnings []string
	for _, key := range md.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unknown key %q ignored", key.String()))
	}
	return finish(doc, present, warnings), nil
}

// document is the on-disk shape of a style file. Sections are values
// prefilled with defaults, so options a section leaves out keep them.
type document struct {
	Name           string         `yaml:"name" toml:"name"`
	BlankLines     BlankLines     `yaml:"blank_lines" toml:"blank_lines"`
	Spaces         Spaces         `yaml:"spaces" toml:"spaces"`
	TabsAndIndents TabsAndIndents `yaml:"tabs_and_indents" toml:"tabs_and_indents"`
}

func defaultDocument() document {
	return document{
		BlankLines:     DefaultBlankLines(),
		Spaces:         DefaultSpaces(),
		TabsAndIndents: DefaultTabsAndIndents(),
	}
}

// finish keeps only the sections the file defined and records a warning
// for each one left to defaults.
func finish(doc document, present map[string]bool, warnings []string) *LoadResult {
	b := &Bundle{Name: doc.Name}
	if present[SectionBlankLines] {
		b.BlankLines = &doc.BlankLines
	}
	if present[SectionSpaces] {
		b.Spaces = &doc.Spaces
	}
	if present[SectionTabsAndIndents] {
		b.TabsAndIndents = &doc.TabsAndIndents
	}
	for _, section := range b.Missing() {
		warnings = append(warnings, fmt.Sprintf("section %q missing, using defaults", section))
	}
	sort.Strings(warnings)
	return &LoadResult{Bundle: b, Warnings: warnings}
}

// Encode serializes a bundle. Missing sections are written out with their
// default values so the output documents every option.
func Encode(b *Bundle, format FileFormat) ([]byte, error) {
	r := Resolve(b)
	full := &Bundle{
		Name:           r.Name,
		BlankLines:     &r.BlankLines,
		Spaces:         &r.Spaces,
		TabsAndIndents: &r.TabsAndIndents,
	}

	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(full); err != nil {
			return nil, fmt.Errorf("encode style: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("close encoder: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(full); err != nil {
			return nil, fmt.Errorf("encode style: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return buf.Bytes(), nil
}
