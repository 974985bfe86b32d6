package ast

// Program is the root of the parsed tree: the forest of top-level
// declarations in source order (spec §2 "program := declaration*").
type Program struct {
	Declarations []Declaration
}
