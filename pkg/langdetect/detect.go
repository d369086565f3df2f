// Package langdetect tells which language a source file is written in, so
// the runner can hand it to the matching front end.
package langdetect

import (
	"bytes"

	"github.com/go-enry/go-enry/v2"
)

// Language names as go-enry reports them.
const (
	Java    = "Java"
	Kotlin  = "Kotlin"
	Unknown = ""
)

// aliases folds go-enry's dialect names into the language whose front end
// reads them.
//
//nolint:gochecknoglobals // Lookup table.
var aliases = map[string]string{
	"Gradle Kotlin DSL": Kotlin,
}

// candidates limits content classification to the languages an LST can be
// built for.
//
//nolint:gochecknoglobals // Fixed candidate list.
var candidates = []string{Java, Kotlin}

// Detect returns the language of the file at path. The extension decides
// when it is unambiguous; otherwise a shebang and then the content are
// consulted. It returns Unknown when nothing matches.
func Detect(path string, content []byte) string {
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return canonical(lang)
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return canonical(lang)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		return lang
	}
	return Unknown
}

func canonical(lang string) string {
	if alias, ok := aliases[lang]; ok {
		return alias
	}
	return lang
}

// Skip reports whether path should be left out of a run: vendored code,
// generated files and dot directories.
func Skip(path string, content []byte) bool {
	if enry.IsVendor(path) || enry.IsDotFile(path) {
		return true
	}
	return content != nil && enry.IsGenerated(path, content)
}

// Generated reports whether content carries a generated-code marker.
func Generated(path string, content []byte) bool {
	return enry.IsGenerated(path, content)
}
