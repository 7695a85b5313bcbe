// Package ast defines the Abstract Syntax Tree produced by internal/parser
// and consumed by internal/validator and internal/emitter.
//
// The tree is a closed sum type: three
// marker interfaces (Decl, Stmt, Expr) each carry an unexported method so
// only types in this package can implement them, and consumers walk the
// tree with type switches rather than a parallel Visitor interface. The
// main dispatch switches end in a default arm that panics (validator
// statements and defines, emitter statements) or returns an error
// (emitter expressions and top-level items) on an unhandled kind.
package ast

import "github.com/arcana-lang/arcana/internal/token"

// Type is one of Arcana's closed set of static types, plus the Nihil
// sentinel which is only valid as a return-type annotation.
type Type string

const (
	Inte      Type = "inte"
	Real      Type = "real"
	Filum     Type = "filum"
	Verum     Type = "verum"
	Ordinata  Type = "ordinata"
	Catalogus Type = "catalogus"
	Nihil     Type = "nihil"
)

// Node is the common root of every AST element: it knows where it came
// from in the source.
type Node interface {
	Pos() token.Position
}

// Decl is a top-level or section-level declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement inside a function body or the main body.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a value-producing expression.
type Expr interface {
	Node
	exprNode()
}

// Base carries the shared source position; every concrete node embeds it.
type Base struct{ P token.Position }

func (b Base) Pos() token.Position { return b.P }

// ---- Program -----------------------------------------------------------

// Program is the root of the AST: an ordered import list, an ordered list
// of top-level items from <INTRODUCTIO> (each either a Decl or a Stmt),
// and exactly one Main function (validated to be `subjecto`).
type Program struct {
	Base
	Imports []ImportEntry
	Defines []Node // each element is a Decl or a Stmt
	Main    *FuncDecl
}

// ImportEntry is an opaque descriptor recorded from a FONS import line.
// Resolution of the referenced module is an external collaborator's job.
type ImportEntry struct {
	Base
	Raw string
}

// ---- Declarations -------------------------------------------------------

type Param struct {
	Name string
	Type Type
}

// VarDecl is `VCON name: type [= init];`.
type VarDecl struct {
	Base
	Name string
	Type Type
	Init Expr // nil if absent
}

func (*VarDecl) declNode() {}

// VarDecl also satisfies Stmt: VCON dispatches into the same statement
// position as SI/RECURSIO/etc., so a local variable declaration inside a
// function body is parsed as a statement, not a top-level-only
// declaration.
func (*VarDecl) stmtNode() {}

// FuncDecl is `FCON name: returnType (p1: t1, p2: t2, ...) -> { body };`.
type FuncDecl struct {
	Base
	Name       string
	ReturnType Type
	Params     []Param
	Body       []Stmt
}

func (*FuncDecl) declNode() {}

// ConstDecl is `PRINCIPIUM name: type = init;`.
type ConstDecl struct {
	Base
	Name string
	Type Type
	Init Expr
}

func (*ConstDecl) declNode() {}

// ConstDecl also satisfies Stmt; see VarDecl's stmtNode for why.
func (*ConstDecl) stmtNode() {}

// ClassDecl is reserved syntax (`CCON`): parsed and stored, never
// semantically analyzed or emitted beyond a placeholder.
type ClassDecl struct {
	Base
	Name    string
	Members []Node
}

func (*ClassDecl) declNode() {}

// ---- Statements ----------------------------------------------------------

// AssignStmt is `target = expr;`.
type AssignStmt struct {
	Base
	Target string
	Value  Expr
}

func (*AssignStmt) stmtNode() {}

// MoveStmt is `target <- source;` — a rebind whose right-hand side must
// itself be an identifier (enforced by the parser as P0021).
type MoveStmt struct {
	Base
	Target string
	Source string
}

func (*MoveStmt) stmtNode() {}

// CallStmt is a call-expression used as a statement: `name() <- (args);`
// or a bare call-expression statement.
type CallStmt struct {
	Base
	Call *CallExpr
}

func (*CallStmt) stmtNode() {}

// IfStmt is `SI propositio:(cond) VERUM { ... } [FALSUM { ... }];`.
// Falsum is nil when no FALSUM branch was written.
type IfStmt struct {
	Base
	Cond   Expr
	Verum  []Stmt
	Falsum []Stmt
}

func (*IfStmt) stmtNode() {}

// LoopStmt is `RECURSIO(propositio: cond, quota: ..., acceleratio: step) { body }`.
//
// QuotaVar/QuotaInit are set when the quota clause bound a counter
// (`quota: i = 0`); QuotaBudget is set when it was a plain expression
// (the iteration budget). Step is nil when acceleratio was omitted
// (emitter defaults it to +1).
type LoopStmt struct {
	Base
	Cond        Expr
	QuotaVar    string // "" if the quota clause (if any) was a plain expression
	QuotaInit   Expr
	QuotaBudget Expr // the budget expression; nil for the `name = expr` form
	HasQuota    bool
	Step        Expr
	Body        []Stmt
}

func (*LoopStmt) stmtNode() {}

// ExprStmt is an expression evaluated for its side effect.
type ExprStmt struct {
	Base
	X Expr
}

func (*ExprStmt) stmtNode() {}

// NihilStmt is the standalone `nihil;` no-op statement.
type NihilStmt struct{ Base }

func (*NihilStmt) stmtNode() {}

// BreakStmt is `effigium;`.
type BreakStmt struct{ Base }

func (*BreakStmt) stmtNode() {}

// ContinueStmt is `proximum;`.
type ContinueStmt struct{ Base }

func (*ContinueStmt) stmtNode() {}

// ReturnStmt is `REDITUS [expr];`.
type ReturnStmt struct {
	Base
	Value Expr // nil for a bare return
}

func (*ReturnStmt) stmtNode() {}

// ---- Expressions ---------------------------------------------------------

// BinOpKind enumerates binary operators, grouped by the precedence tier
// that produced them (see internal/parser/parser_expressions.go).
type BinOpKind string

const (
	OpAdd    BinOpKind = "+"
	OpSub    BinOpKind = "-"
	OpMul    BinOpKind = "*"
	OpDiv    BinOpKind = "/"
	OpMod    BinOpKind = "%"
	OpPow    BinOpKind = "**"
	OpEq     BinOpKind = "=="
	OpNotEq  BinOpKind = "><"
	OpLt     BinOpKind = "<"
	OpGt     BinOpKind = ">"
	OpLe     BinOpKind = "<="
	OpGe     BinOpKind = ">="
	OpAnd    BinOpKind = "et"
	OpOr     BinOpKind = "aut"
)

// BinOp is a binary expression `lhs op rhs`.
type BinOp struct {
	Base
	Op  BinOpKind
	LHS Expr
	RHS Expr
}

func (*BinOp) exprNode() {}

// UnaryOpKind enumerates Arcana's two unary operators.
type UnaryOpKind string

const (
	OpNot UnaryOpKind = "non"
	OpNeg UnaryOpKind = "-"
)

// Unary is `non expr` or `-expr`.
type Unary struct {
	Base
	Op      UnaryOpKind
	Operand Expr
}

func (*Unary) exprNode() {}

// Ident references a declared name.
type Ident struct {
	Base
	Name string
}

func (*Ident) exprNode() {}

// IntLit is an integer literal.
type IntLit struct {
	Base
	Value int64
}

func (*IntLit) exprNode() {}

// RealLit is a floating-point literal.
type RealLit struct {
	Base
	Value float64
}

func (*RealLit) exprNode() {}

// StrLit is a plain (non-interpolated) string literal.
type StrLit struct {
	Base
	Value string
}

func (*StrLit) exprNode() {}

// FStrPart is one chunk of an interpolated string: either literal text
// (Expr == nil) or a parsed expression fragment.
type FStrPart struct {
	Text string
	Expr Expr // nil when this part is plain text
}

// FStrLit is `cantus'…${expr}…'`, pre-split into alternating parts.
type FStrLit struct {
	Base
	Parts []FStrPart
}

func (*FStrLit) exprNode() {}

// CallExpr is `name() <- (arg1, arg2, ...)`, the canonical call form. It
// is an Expr (usable anywhere an expression fits) and, via CallStmt, also
// a statement when followed directly by `;`.
type CallExpr struct {
	Base
	Name string
	Args []Expr
}

func (*CallExpr) exprNode() {}

// DictPair is one `key: value` entry of a DictLit.
type DictPair struct {
	Key   Expr
	Value Expr
}

// DictLit is `{ k1: v1, k2: v2, ... }`.
type DictLit struct {
	Base
	Pairs []DictPair
}

func (*DictLit) exprNode() {}

// NewBase is a constructor helper used by the parser to stamp a position
// onto an embedded Base field without repeating token.Position{...} at
// every call site.
func NewBase(pos token.Position) Base { return Base{P: pos} }
