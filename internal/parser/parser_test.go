package parser_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/funvibe/ecmaparse/internal/config"
	"github.com/funvibe/ecmaparse/internal/parser"
	"github.com/funvibe/ecmaparse/internal/prettyprinter"
)

func TestParser(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		opts  config.Options
	}{
		{"simple_assignment", "a = 5;", config.Default()},
		{"infix_expression", "a = 5 + 2 * 10;", config.Default()},
		{"prefix_expression", "a = -5;", config.Default()},
		{"complex_expression", "a = (b + c) * -d;", config.Default()},
		{"exponent_right_assoc", "a = 2 ** 3 ** 2;", config.Default()},
		{"array_destructuring", "let [a, b, ...rest] = list;", config.Default()},
		{"object_destructuring", "let {a, b: renamed, ...rest} = obj;", config.Default()},
		{"arrow_function", "const add = (x, y) => x + y;", config.Default()},
		{"arrow_function_block_body", "const f = (x) => { return x * 2; };", config.Default()},
		{"function_declaration", "function add(x, y) { return x + y; }", config.Default()},
		{"generator_function", "function* gen() { yield 1; yield* other(); }", config.Default()},
		{"async_function", "async function load() { return await fetch(url); }", config.Default()},
		{"class_basic", "class Point { constructor(x, y) { this.x = x; this.y = y; } }", config.Default()},
		{"class_inheritance", "class Point3 extends Point { constructor(x, y, z) { super(x, y); this.z = z; } }", config.Default()},
		{"class_private_fields", "class Counter { #count = 0; #increment() { this.#count++; } get value() { return this.#count; } }", config.Default()},
		{"class_static_block", "class Config { static values = []; static { Config.values.push(1); } }", config.Default()},
		{"template_literal", "const s = `hello ${name}, you are ${age + 1} next year`;", config.Default()},
		{"optional_chaining", "const v = a?.b?.[c]?.();", config.Default()},
		{"nullish_coalescing", "const v = a ?? b ?? c;", config.Default()},
		{"for_of_await", "async function run() { for await (const x of gen()) { use(x); } }", config.Default()},
		{"try_catch_finally", "try { risky(); } catch (e) { handle(e); } finally { cleanup(); }", config.Default()},
		{"try_optional_catch_binding", "try { risky(); } catch { recover(); }", config.Default()},
		{"switch_statement", "switch (x) { case 1: a(); break; case 2: b(); break; default: c(); }", config.Default()},
		{"labeled_break", "outer: for (;;) { for (;;) { break outer; } }", config.Default()},
		{"chained_labels_continue", "L: M: while (false) { continue M; }", config.Default()},
		{"import_export", "import def, { a, b as c } from 'mod';\nexport const total = def + a + c;\nexport default function main() {}", withModule()},
		{"export_all", "export * as ns from 'mod';", withModule()},
		{"spread_call", "const out = combine(...first, ...second);", config.Default()},
		{"new_expression", "const p = new Point(1, 2);", config.Default()},
		{"tagged_template", "const out = tag`raw ${value}`;", config.Default()},
		{"sequence_and_comma", "for (a = 0, b = 10; a < b; a++, b--) { noop(); }", config.Default()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prog, errs := parser.Parse(tc.input, tc.opts)
			if len(errs) > 0 {
				var msgs []string
				for _, err := range errs {
					msgs = append(msgs, err.Error())
				}
				t.Fatalf("parsing failed with errors:\n%s", strings.Join(msgs, "\n"))
			}

			treePrinter := prettyprinter.NewTreePrinter()
			prog.Accept(treePrinter)
			treeOutput := treePrinter.String()

			codePrinter := prettyprinter.NewCodePrinter()
			prog.Accept(codePrinter)
			codeOutput := codePrinter.String()

			actual := "--- AST Tree ---\n" + treeOutput + "\n--- Source Code ---\n" + codeOutput

			snaps.MatchSnapshot(t, actual)
		})
	}
}

func withModule() config.Options {
	opts := config.Default()
	opts.SourceType = config.SourceTypeModule
	return opts
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		opts  config.Options
	}{
		{"undefined_break_label", "break nowhere;", config.Default()},
		{"continue_outside_loop", "continue;", config.Default()},
		{"duplicate_let_binding", "let a; let a;", config.Default()},
		{"duplicate_param_names_strict", "'use strict'; function f(a, a) {}", config.Default()},
		{"invalid_exponent_unary", "const x = -2 ** 3;", config.Default()},
		{"mixed_logical_without_parens", "const x = a ?? b || c;", config.Default()},
		{"export_not_defined", "export { missing };", withModule()},
		{"duplicate_constructor", "class C { constructor() {} constructor() {} }", config.Default()},
		{"async_constructor", "class C { async constructor() {} }", config.Default()},
		{"generator_constructor", "class C { *constructor() {} }", config.Default()},
		{"get_constructor", "class C { get constructor() {} }", config.Default()},
		{"set_constructor", "class C { set constructor(v) {} }", config.Default()},
		{"static_prototype_method", "class C { static prototype() {} }", config.Default()},
		{"static_prototype_field", "class C { static prototype = 1; }", config.Default()},
		{"field_named_constructor", "class C { constructor = 1; }", config.Default()},
		{"getter_with_params", "class C { get x(a) { return a; } }", config.Default()},
		{"setter_wrong_arity", "class C { set x(a, b) {} }", config.Default()},
		{"setter_rest_param", "class C { set x(...a) {} }", config.Default()},
		{"new_optional_chain_callee", "const p = new a?.b();", config.Default()},
		{"continue_to_block_label", "for(;;) { L: { continue L; } }", config.Default()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := parser.Parse(tc.input, tc.opts)
			if len(errs) == 0 {
				t.Fatalf("expected parse errors for input %q, got none", tc.input)
			}
		})
	}
}
