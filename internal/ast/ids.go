package ast

type (
	FileID    uint32
	StmtID    uint32
	ExprID    uint32
	TypeID    uint32
	FnParamID uint32
	PayloadID uint32
)

const (
	NoFileID    FileID    = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoTypeID    TypeID    = 0
	NoFnParamID FnParamID = 0
	NoPayloadID PayloadID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id TypeID) IsValid() bool    { return id != NoTypeID }
func (id FnParamID) IsValid() bool { return id != NoFnParamID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }

// NodeKind discriminates the arena a NodeRef points into.
type NodeKind uint8

const (
	NodeInvalid NodeKind = iota
	NodeFile
	NodeStmt
	NodeExpr
)

// NodeRef is a non-owning reference to any node. The zero value means
// "no parent" and is valid only on statements owned directly by a file
// before PushStmt, and on detached nodes under construction.
type NodeRef struct {
	Kind  NodeKind
	Index uint32
}

func FileRef(id FileID) NodeRef { return NodeRef{Kind: NodeFile, Index: uint32(id)} }
func StmtRef(id StmtID) NodeRef { return NodeRef{Kind: NodeStmt, Index: uint32(id)} }
func ExprRef(id ExprID) NodeRef { return NodeRef{Kind: NodeExpr, Index: uint32(id)} }

func (r NodeRef) IsValid() bool { return r.Kind != NodeInvalid && r.Index != 0 }

// AsStmt returns the statement ID when the reference points at a statement.
func (r NodeRef) AsStmt() (StmtID, bool) {
	if r.Kind != NodeStmt {
		return NoStmtID, false
	}
	return StmtID(r.Index), true
}

// AsExpr returns the expression ID when the reference points at an expression.
func (r NodeRef) AsExpr() (ExprID, bool) {
	if r.Kind != NodeExpr {
		return NoExprID, false
	}
	return ExprID(r.Index), true
}

// AsFile returns the file ID when the reference points at a file.
func (r NodeRef) AsFile() (FileID, bool) {
	if r.Kind != NodeFile {
		return NoFileID, false
	}
	return FileID(r.Index), true
}
