package ast

import (
	"volt/internal/source"
)

// FnParam is one function parameter. Parameters carry no initializer in
// source, only a name and an optional type annotation.
type FnParam struct {
	Span source.Span
	Name source.StringID
	Type TypeID // NoTypeID when the parameter is untyped
}

type FnParams struct {
	Arena *Arena[FnParam]
}

func NewFnParams(capHint uint) *FnParams {
	return &FnParams{
		Arena: NewArena[FnParam](capHint),
	}
}

func (p *FnParams) New(sp source.Span, name source.StringID, typ TypeID) FnParamID {
	return FnParamID(p.Arena.Allocate(FnParam{Span: sp, Name: name, Type: typ}))
}

func (p *FnParams) Get(id FnParamID) *FnParam {
	return p.Arena.Get(uint32(id))
}
