// Package symtab implements the validator's symbol table as a stack of
// scopes keyed by name, each scope a flat map chained to its parent. It
// stores declared static information (a type, and for functions an
// arity) rather than runtime values; the validator never evaluates
// anything.
package symtab

import "github.com/arcana-lang/arcana/internal/ast"

// Symbol records what the validator knows about a declared name.
type Symbol struct {
	Type   ast.Type
	IsFunc bool
	Arity  int // valid only when IsFunc
}

// Scope is one lexical scope: a flat map of names plus a link to its
// parent. A nil Parent marks the root (program-level) scope; function,
// loop, and block scopes are nested inside it.
type Scope struct {
	vars   map[string]Symbol
	Parent *Scope
}

// New creates a Scope nested inside parent. Pass nil for the root scope.
func New(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]Symbol), Parent: parent}
}

// Bind declares name in this scope, shadowing any outer binding of the
// same name. It returns false if name was already bound in this exact
// scope (the validator currently doesn't reject redeclaration, but callers
// may use this to do so later).
func (s *Scope) Bind(name string, sym Symbol) bool {
	_, exists := s.vars[name]
	s.vars[name] = sym
	return !exists
}

// Lookup searches this scope and then each parent in turn, returning the
// nearest binding of name.
func (s *Scope) Lookup(name string) (Symbol, bool) {
	if sym, ok := s.vars[name]; ok {
		return sym, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return Symbol{}, false
}
