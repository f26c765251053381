package utils

import (
	"path/filepath"
	"strings"

	"github.com/funvibe/ecmaparse/internal/config"
)

// ExtractModuleName derives a display name from a source file path: the base
// filename with any recognized source extension stripped.
func ExtractModuleName(path string) string {
	name := filepath.Base(path)
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

// HasRecognizedExtension reports whether path ends in one of
// config.SourceFileExtensions, the check the CLI driver uses to skip
// non-source files when given a directory argument.
func HasRecognizedExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, recognized := range config.SourceFileExtensions {
		if ext == recognized {
			return true
		}
	}
	return false
}

// SourceTypeForExtension picks the config.SourceType a bare file extension
// implies: ".mjs" is unambiguously a module, everything else defaults to
// script (the caller may still override with an explicit --module flag).
func SourceTypeForExtension(path string) string {
	if filepath.Ext(path) == ".mjs" {
		return config.SourceTypeModule
	}
	return config.SourceTypeScript
}
