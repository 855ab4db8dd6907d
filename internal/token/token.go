// Package token defines the small closed set of ASCII token tags the lexer
// produces for primitives that have a simple (non-glyph) spelling. It exists
// so internal/primitive has something concrete to name in ascii(p)/from_simple;
// the lexer itself is out of scope for this module.
package token

// Simple is a lexer token tag for an ASCII-spelled primitive.
type Simple int

const (
	Dot          Simple = iota // .
	Comma                      // ,
	Tilde                      // ~
	Semicolon                  // ;
	Equal                      // =
	NotEqual                   // != or ≠
	Less                       // <
	LessEqual                  // <= or ≤
	Greater                    // >
	GreaterEqual               // >= or ≥
	Plus                       // +
	Minus                      // -
	Star                       // * or ×
	Percent                    // % or ÷
	Bang                       // !
	Colon                      // :
	Question                   // ?
	Backslash                  // \
	Slash                      // /
	Dollar                     // $
	Backtick                   // `
)

var names = map[Simple]string{
	Dot:          ".",
	Comma:        ",",
	Tilde:        "~",
	Semicolon:    ";",
	Equal:        "=",
	NotEqual:     "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Percent:      "%",
	Bang:         "!",
	Colon:        ":",
	Question:     "?",
	Backslash:    "\\",
	Slash:        "/",
	Dollar:       "$",
	Backtick:     "`",
}

// String renders the token's canonical spelling, for diagnostics.
func (s Simple) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return "<unknown token>"
}
