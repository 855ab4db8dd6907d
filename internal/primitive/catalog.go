package primitive

import "github.com/loomlang/loom/internal/token"

// entry is one row of the primitive catalog: name, glyph, ascii token (if
// any), args, outputs, is_modifier, modifier_args.
type entry struct {
	name         string
	ascii        token.Simple
	hasAscii     bool
	glyph        rune
	hasGlyph     bool
	args         int
	hasArgs      bool // false means variadic/unspecified (Call, Unpack outputs)
	outputs      int
	hasOutputs   bool
	isModifier   bool
	modifierArgs int
}

var table = map[Kind]entry{
	// Stack ops
	Dup:    {name: "dup", ascii: token.Dot, hasAscii: true, args: 1, hasArgs: true, outputs: 2, hasOutputs: true},
	Over:   {name: "over", ascii: token.Comma, hasAscii: true, args: 2, hasArgs: true, outputs: 3, hasOutputs: true},
	Flip:   {name: "flip", ascii: token.Tilde, hasAscii: true, args: 2, hasArgs: true, outputs: 2, hasOutputs: true},
	Pop:    {name: "pop", ascii: token.Semicolon, hasAscii: true, args: 1, hasArgs: true, outputs: 0, hasOutputs: true},
	Unpack: {name: "unpack", glyph: '⊔', hasGlyph: true, args: 1, hasArgs: true},

	// Monadic pervasive
	Sign:  {name: "sign", ascii: token.Dollar, hasAscii: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Not:   {name: "not", glyph: '¬', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Neg:   {name: "neg", ascii: token.Backtick, hasAscii: true, glyph: '¯', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Abs:   {name: "abs", glyph: '⌵', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Sqrt:  {name: "sqrt", glyph: '√', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Sin:   {name: "sin", args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Cos:   {name: "cos", args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	// Asin and Acos have no canonical name: they are reachable only as
	// Sin's and Cos's inverse partners, never by FromName.
	Asin: {args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Acos: {args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Floor: {name: "floor", glyph: '⌊', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Ceil:  {name: "ceil", glyph: '⌈', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Round: {name: "round", glyph: '⁅', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},

	// Dyadic pervasive
	Eq:   {name: "eq", ascii: token.Equal, hasAscii: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Ne:   {name: "ne", ascii: token.NotEqual, hasAscii: true, glyph: '≠', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Lt:   {name: "lt", ascii: token.Less, hasAscii: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Le:   {name: "le", ascii: token.LessEqual, hasAscii: true, glyph: '≤', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Gt:   {name: "gt", ascii: token.Greater, hasAscii: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Ge:   {name: "ge", ascii: token.GreaterEqual, hasAscii: true, glyph: '≥', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Add:  {name: "add", ascii: token.Plus, hasAscii: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Sub:  {name: "sub", ascii: token.Minus, hasAscii: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Mul:  {name: "mul", ascii: token.Star, hasAscii: true, glyph: '×', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Div:  {name: "div", ascii: token.Percent, hasAscii: true, glyph: '÷', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Mod:  {name: "mod", glyph: '◿', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Pow:  {name: "pow", glyph: 'ⁿ', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	// Root has no canonical name: reachable only as Pow's inverse partner.
	Root: {args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Min:  {name: "min", glyph: '↧', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Max:  {name: "max", glyph: '↥', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Atan: {name: "atan", args: 2, hasArgs: true, outputs: 1, hasOutputs: true},

	// Monadic array
	Len:         {name: "len", glyph: '⇀', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Rank:        {name: "rank", glyph: '⸫', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Shape:       {name: "shape", glyph: '△', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Range:       {name: "range", glyph: '⇡', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	First:       {name: "first", glyph: '⊢', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Reverse:     {name: "reverse", glyph: '⇌', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Enclose:     {name: "enclose", glyph: '⊓', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Normalize:   {name: "normalize", glyph: '□', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Deshape:     {name: "deshape", glyph: '♭', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Transpose:   {name: "transpose", glyph: '⍉', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Sort:        {name: "sort", glyph: '∧', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Grade:       {name: "grade", glyph: '⍋', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Indices:     {name: "indices", glyph: '⊘', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Classify:    {name: "classify", glyph: '⊛', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Deduplicate: {name: "deduplicate", glyph: '⊝', hasGlyph: true, args: 1, hasArgs: true, outputs: 1, hasOutputs: true},

	// Dyadic array
	Match:     {name: "match", glyph: '≅', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	NoMatch:   {name: "nomatch", glyph: '≇', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Join:      {name: "join", glyph: '≍', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Pair:      {name: "pair", glyph: '⚇', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Couple:    {name: "couple", glyph: '⊟', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Pick:      {name: "pick", glyph: '⊡', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Select:    {name: "select", glyph: '⊏', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Take:      {name: "take", glyph: '↙', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Drop:      {name: "drop", glyph: '↘', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Reshape:   {name: "reshape", glyph: '↯', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Rotate:    {name: "rotate", glyph: '↻', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Windows:   {name: "windows", glyph: '◫', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Replicate: {name: "replicate", glyph: '‡', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Member:    {name: "member", glyph: '∈', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Group:     {name: "group", glyph: '⊕', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	IndexOf:   {name: "indexof", glyph: '⊙', hasGlyph: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},

	// Triadic
	Put: {name: "put", args: 3, hasArgs: true, outputs: 1, hasOutputs: true},

	// Modifiers
	Reduce: {name: "reduce", ascii: token.Slash, hasAscii: true, isModifier: true, modifierArgs: 1},
	Fold:   {name: "fold", glyph: '⌿', hasGlyph: true, isModifier: true, modifierArgs: 1},
	Scan:   {name: "scan", ascii: token.Backslash, hasAscii: true, isModifier: true, modifierArgs: 1},
	Each:   {name: "each", glyph: '⸪', hasGlyph: true, isModifier: true, modifierArgs: 1},
	Cells:  {name: "cells", glyph: '≡', hasGlyph: true, isModifier: true, modifierArgs: 1},
	Table:  {name: "table", glyph: '⊞', hasGlyph: true, isModifier: true, modifierArgs: 1},
	Repeat: {name: "repeat", glyph: '⍥', hasGlyph: true, isModifier: true, modifierArgs: 1},
	Invert: {name: "invert", glyph: '↩', hasGlyph: true, isModifier: true, modifierArgs: 1},
	Under:  {name: "under", glyph: '⍜', hasGlyph: true, isModifier: true, modifierArgs: 2},
	Try:    {name: "try", ascii: token.Question, hasAscii: true, isModifier: true, modifierArgs: 2},

	// Misc
	Assert: {name: "assert", ascii: token.Bang, hasAscii: true, args: 2, hasArgs: true, outputs: 1, hasOutputs: true},
	Nop:    {name: "nop", glyph: '·', hasGlyph: true, args: 0, hasArgs: true, outputs: 0, hasOutputs: true},
	Call:   {name: "call", ascii: token.Colon, hasAscii: true},
	String: {name: "string", args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Parse:  {name: "parse", args: 1, hasArgs: true, outputs: 1, hasOutputs: true},
	Use:    {name: "use", args: 2, hasArgs: true, outputs: 1, hasOutputs: true},

	// Constants
	Pi:       {name: "pi", glyph: 'π', hasGlyph: true, args: 0, hasArgs: true, outputs: 1, hasOutputs: true},
	Infinity: {name: "infinity", glyph: '∞', hasGlyph: true, args: 0, hasArgs: true, outputs: 1, hasOutputs: true},
}

// allKinds lists every plain Kind in catalog order, for iteration (All,
// bijection tests) without depending on map order.
var allKinds = []Kind{
	Dup, Over, Flip, Pop, Unpack,
	Sign, Not, Neg, Abs, Sqrt, Sin, Cos, Asin, Acos, Floor, Ceil, Round,
	Eq, Ne, Lt, Le, Gt, Ge, Add, Sub, Mul, Div, Mod, Pow, Root, Min, Max, Atan,
	Len, Rank, Shape, Range, First, Reverse, Enclose, Normalize, Deshape,
	Transpose, Sort, Grade, Indices, Classify, Deduplicate,
	Match, NoMatch, Join, Pair, Couple, Pick, Select, Take, Drop, Reshape,
	Rotate, Windows, Replicate, Member, Group, IndexOf,
	Put,
	Reduce, Fold, Scan, Each, Cells, Table, Repeat, Invert, Under, Try,
	Assert, Nop, Call, String, Parse, Use,
	Pi, Infinity,
}
