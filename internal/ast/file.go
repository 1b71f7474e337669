package ast

import (
	"volt/internal/source"
)

// File is the document root owning one source unit's statement list.
type File struct {
	Span   source.Span
	Source source.FileID
	Stmts  []StmtID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(sp source.Span, src source.FileID) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:   sp,
		Source: src,
		Stmts:  make([]StmtID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
