// Package ast defines the node set of a C-like language: declarations,
// types, expressions and statements composed into exclusively-owned trees.
//
// The variant set is closed. Rendering and any other processing dispatch
// over it exhaustively (see Visitor), so a new variant means updating
// every visitor, which the compiler enforces.
package ast

import (
	"strconv"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Node is any element of a tree: the unit of ownership and rendering.
	// A node owns its children; attaching the same node under two parents
	// is a caller error.
	Node interface {
		node()
	}

	Program struct {
		Nodes []Node
	}

	Primitive struct {
		Kind Kind
	}

	// Type is a reference to a named struct-like type.
	Type struct {
		Name string
	}

	PointerOf struct {
		Node Node
	}

	ArrayOf struct {
		Node Node
		Size uint // 0 means unsized
	}

	Static struct {
		Node Node
	}

	DeclLocal struct {
		Name string
		Type Node
	}

	Assign struct {
		Lhs Node
		Rhs Node
	}

	Block struct {
		Nodes []Node
	}

	Function struct {
		Name       string
		Parameters []Node
		ReturnType Node
		Body       Node
	}

	Return struct {
		Node Node
	}

	Field struct {
		Owner Node
		Name  string
	}

	DeclType struct {
		Name   string
		Fields []Node
	}

	Deref struct {
		Node Node
	}

	GetRef struct {
		Node Node
	}

	// Local is a reference to a previously declared name.
	Local struct {
		Name string
	}

	Call struct {
		Callee Node
		Args   []Node
	}

	// Kind is a builtin scalar type tag.
	Kind int

	// Char is a Literal payload rendered as a single-quoted character.
	// A plain rune payload is numeric and prints its code point.
	Char byte

	// Value is the set of Literal payload types.
	Value interface {
		int | int8 | int16 | int32 | int64 |
			uint | uint8 | uint16 | uint32 | uint64 |
			float32 | float64 |
			string | Char
	}

	Literal[T Value] struct {
		Value T
	}

	// Lit is the Literal variant with the payload type erased; it is the
	// form visitors receive.
	Lit interface {
		Node

		AppendValue(b []byte) []byte
	}
)

const (
	I8 Kind = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
)

func (p *Program) Push(n Node) {
	p.Nodes = append(p.Nodes, n)
}

func (bl *Block) Push(n Node) {
	bl.Nodes = append(bl.Nodes, n)
}

// PointerOf wraps the type into a pointer node, taking ownership of the
// receiver.
func (t *Type) PointerOf() *PointerOf {
	return &PointerOf{Node: t}
}

// ArrayOf wraps the type into an array node, taking ownership of the
// receiver. Size 0 means unsized.
func (t *Type) ArrayOf(size uint) *ArrayOf {
	return &ArrayOf{Node: t, Size: size}
}

// AppendValue appends the payload text: numerics in decimal, strings in
// double quotes (verbatim, the caller escapes), Char in single quotes.
func (l *Literal[T]) AppendValue(b []byte) []byte {
	switch v := any(l.Value).(type) {
	case int:
		b = strconv.AppendInt(b, int64(v), 10)
	case int8:
		b = strconv.AppendInt(b, int64(v), 10)
	case int16:
		b = strconv.AppendInt(b, int64(v), 10)
	case int32:
		b = strconv.AppendInt(b, int64(v), 10)
	case int64:
		b = strconv.AppendInt(b, v, 10)
	case uint:
		b = strconv.AppendUint(b, uint64(v), 10)
	case uint8:
		b = strconv.AppendUint(b, uint64(v), 10)
	case uint16:
		b = strconv.AppendUint(b, uint64(v), 10)
	case uint32:
		b = strconv.AppendUint(b, uint64(v), 10)
	case uint64:
		b = strconv.AppendUint(b, v, 10)
	case float32:
		b = strconv.AppendFloat(b, float64(v), 'f', -1, 32)
	case float64:
		b = strconv.AppendFloat(b, v, 'f', -1, 64)
	case string:
		b = append(b, '"')
		b = append(b, v...)
		b = append(b, '"')
	case Char:
		b = append(b, '\'', byte(v), '\'')
	}

	return b
}

func (k Kind) String() string {
	switch k {
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, k.String())
}

func (p *Program) node()    {}
func (p *Primitive) node()  {}
func (t *Type) node()       {}
func (p *PointerOf) node()  {}
func (a *ArrayOf) node()    {}
func (s *Static) node()     {}
func (d *DeclLocal) node()  {}
func (a *Assign) node()     {}
func (bl *Block) node()     {}
func (f *Function) node()   {}
func (r *Return) node()     {}
func (f *Field) node()      {}
func (d *DeclType) node()   {}
func (d *Deref) node()      {}
func (g *GetRef) node()     {}
func (l *Local) node()      {}
func (c *Call) node()       {}
func (l *Literal[T]) node() {}
