package ast

import (
	"volt/internal/source"
)

// TypeName is a type annotation as written in source: a bare name.
// Nothing is resolved here; later stages interpret the names.
type TypeName struct {
	Span source.Span
	Name source.StringID
}

type Types struct {
	Arena *Arena[TypeName]
}

func NewTypes(capHint uint) *Types {
	return &Types{
		Arena: NewArena[TypeName](capHint),
	}
}

func (t *Types) New(sp source.Span, name source.StringID) TypeID {
	return TypeID(t.Arena.Allocate(TypeName{Span: sp, Name: name}))
}

func (t *Types) Get(id TypeID) *TypeName {
	return t.Arena.Get(uint32(id))
}
