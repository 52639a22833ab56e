package selector

import "github.com/arnodel/grammar"

// TokeniseJSON splits JSON text into tokens for the grammar in grammar.go.
// Whitespace between tokens is insignificant and skipped.
var TokeniseJSON = grammar.SimpleTokeniser([]grammar.TokenDef{
	{
		Ptn: `\s+`,
	},
	{
		Name: "null",
		Ptn:  `null\b`,
	},
	{
		Name: "bool",
		Ptn:  `true\b|false\b`,
	},
	{
		Name: "number",
		Ptn:  `-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?`,
	},
	{
		Name: "string",
		Ptn:  `"(?:\\["\\/bfnrt]|\\u[0-9A-Fa-f]{4}|[^"\\])*"`,
	},
	{
		Name: "comma",
		Ptn:  `,`,
	},
	{
		Name: "op",
		Ptn:  `[][{}:]`,
	},
})
