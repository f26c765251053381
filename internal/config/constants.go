// Package config defines the public options surface that configures a
// parse: ECMAScript edition gating, source type, and the behavioral toggles
// spec.md §6 calls out as external collaborators of the parser core.
package config

// SourceFileExt is the conventional extension for ECMAScript source
// consumed by the CLI driver.
const SourceFileExt = ".js"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".js", ".mjs", ".cjs"}

// EcmaVersion selects which edition's grammar and feature set is active.
// 2015 through 2022 are modeled explicitly; Latest tracks the newest edition
// this parser implements.
const (
	Ecma2015 = 2015
	Ecma2016 = 2016
	Ecma2017 = 2017
	Ecma2018 = 2018
	Ecma2019 = 2019
	Ecma2020 = 2020
	Ecma2021 = 2021
	Ecma2022 = 2022
	Latest   = Ecma2022
)

// Options is the public knob set accepted by the parser's entry point,
// mirroring spec.md §6's "Options" external collaborator.
type Options struct {
	// EcmaVersion gates which syntax productions are recognized: e.g.
	// private class fields and top-level await require >= 2022.
	EcmaVersion int

	// SourceType is "script" or "module"; module sources allow import/export
	// declarations and run in strict mode implicitly.
	SourceType string

	AllowReturnOutsideFunction  bool
	AllowImportExportEverywhere bool
	AllowAwaitOutsideFunction   bool
	AllowSuperOutsideMethod     bool
	AllowHashBang               bool

	// Locations requests {line, column} SourceLocation bookkeeping on every
	// node; Ranges requests the [start, end] byte-offset pair.
	Locations bool
	Ranges    bool

	// PreserveParens keeps an explicit ParenthesizedExpression wrapper
	// instead of discarding redundant parentheses.
	PreserveParens bool

	// DirectSourceFile, when non-empty, is stamped onto every node's
	// SourceFile field instead of being left blank.
	DirectSourceFile string

	OnInsertedSemicolon func(pos int, line, column int)
	OnTrailingComma     func(pos int, line, column int)
	OnComment           func(block bool, text string, start, end int, line, column int)
	OnToken             func(tokenType string, value interface{}, start, end int)
}

// Default returns the Options a bare call to Parse would use: latest
// edition, script source type, no bookkeeping extras.
func Default() Options {
	return Options{
		EcmaVersion: Latest,
		SourceType:  "script",
	}
}

// SourceTypeModule and SourceTypeScript are the two legal SourceType values.
const (
	SourceTypeScript = "script"
	SourceTypeModule = "module"
)
