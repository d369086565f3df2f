package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/golst/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{name: "java by extension", path: "src/A.java", content: "class A {}", want: langdetect.Java},
		{name: "kotlin by extension", path: "src/A.kt", content: "class A", want: langdetect.Kotlin},
		{name: "kotlin script", path: "build.gradle.kts", content: "plugins {}", want: langdetect.Kotlin},
		{name: "other language", path: "main.go", content: "package main", want: "Go"},
		{name: "empty without extension", path: "README", content: "", want: langdetect.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.Detect(tt.path, []byte(tt.content)))
		})
	}
}

func TestSkip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    bool
	}{
		{name: "source", path: "src/main/java/A.java", content: "class A {}", want: false},
		{name: "vendored", path: "vendor/lib/A.java", want: true},
		{name: "node modules", path: "node_modules/x/A.java", want: true},
		{name: "dot file", path: "src/.A.java", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var content []byte
			if tt.content != "" {
				content = []byte(tt.content)
			}
			assert.Equal(t, tt.want, langdetect.Skip(tt.path, content))
		})
	}
}
