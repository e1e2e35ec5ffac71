package ast

import (
	"tlog.app/go/errors"
)

// Visitor separates tree structure from processing: one method per
// variant in the closed set. Implementations produce text by appending
// to b and returning the extended buffer.
type Visitor interface {
	VisitProgram(b []byte, x *Program) ([]byte, error)
	VisitPrimitive(b []byte, x *Primitive) ([]byte, error)
	VisitType(b []byte, x *Type) ([]byte, error)
	VisitPointerOf(b []byte, x *PointerOf) ([]byte, error)
	VisitArrayOf(b []byte, x *ArrayOf) ([]byte, error)
	VisitStatic(b []byte, x *Static) ([]byte, error)
	VisitLiteral(b []byte, x Lit) ([]byte, error)
	VisitDeclLocal(b []byte, x *DeclLocal) ([]byte, error)
	VisitAssign(b []byte, x *Assign) ([]byte, error)
	VisitBlock(b []byte, x *Block) ([]byte, error)
	VisitFunction(b []byte, x *Function) ([]byte, error)
	VisitReturn(b []byte, x *Return) ([]byte, error)
	VisitField(b []byte, x *Field) ([]byte, error)
	VisitDeclType(b []byte, x *DeclType) ([]byte, error)
	VisitDeref(b []byte, x *Deref) ([]byte, error)
	VisitGetRef(b []byte, x *GetRef) ([]byte, error)
	VisitLocal(b []byte, x *Local) ([]byte, error)
	VisitCall(b []byte, x *Call) ([]byte, error)
}

// Accept dispatches the node to the visitor method matching its variant.
// It is the single dispatch point: a variant added to the set gets its
// case here and its method on every Visitor, nothing else changes.
func Accept(b []byte, v Visitor, n Node) ([]byte, error) {
	switch x := n.(type) {
	case nil:
		return nil, errors.New("nil node")
	case *Program:
		return v.VisitProgram(b, x)
	case *Primitive:
		return v.VisitPrimitive(b, x)
	case *Type:
		return v.VisitType(b, x)
	case *PointerOf:
		return v.VisitPointerOf(b, x)
	case *ArrayOf:
		return v.VisitArrayOf(b, x)
	case *Static:
		return v.VisitStatic(b, x)
	case *DeclLocal:
		return v.VisitDeclLocal(b, x)
	case *Assign:
		return v.VisitAssign(b, x)
	case *Block:
		return v.VisitBlock(b, x)
	case *Function:
		return v.VisitFunction(b, x)
	case *Return:
		return v.VisitReturn(b, x)
	case *Field:
		return v.VisitField(b, x)
	case *DeclType:
		return v.VisitDeclType(b, x)
	case *Deref:
		return v.VisitDeref(b, x)
	case *GetRef:
		return v.VisitGetRef(b, x)
	case *Local:
		return v.VisitLocal(b, x)
	case *Call:
		return v.VisitCall(b, x)
	case Lit:
		return v.VisitLiteral(b, x)
	default:
		return nil, errors.New("unsupported node: %T", n)
	}
}

// As views a generic node as a concrete variant. It reports false on
// mismatch, it never panics.
func As[T Node](n Node) (T, bool) {
	x, ok := n.(T)
	return x, ok
}
