package semantic

import "github.com/BvHand487/shift/internal/types"

// VarSymbol is a variable visible in some scope frame.
type VarSymbol struct {
	Name string
	Type types.Type
}

// ParamSymbol records one parameter of a function signature, retained
// on the FuncSymbol independently of the AST so call-site checks don't
// need to walk back to the Prototype node.
type ParamSymbol struct {
	Name    string
	Type    types.Type
	HasInit bool
}

// FuncSymbol is a function's signature plus definition state.
type FuncSymbol struct {
	Name      string
	RetType   types.Type
	Params    []ParamSymbol
	IsExtern  bool
	IsVarArg  bool
	IsDefined bool
}

// RequiredParamCount returns the number of leading parameters without
// a default value — the minimum a call must supply.
func (f *FuncSymbol) RequiredParamCount() int {
	n := 0
	for _, p := range f.Params {
		if !p.HasInit {
			n++
		}
	}
	return n
}
