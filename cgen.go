// Package cgen builds C-like syntax trees and renders them to source
// text. Nodes live in the ast package, the text backend in render; this
// package is the construction facade, so factory names can mirror the
// variant names.
//
// Every factory takes ownership of the nodes passed to it. A node
// attached to a parent must not be attached anywhere else.
package cgen

import (
	"github.com/slowlang/cgen/ast"
)

func I8() *ast.Primitive  { return &ast.Primitive{Kind: ast.I8} }
func I16() *ast.Primitive { return &ast.Primitive{Kind: ast.I16} }
func I32() *ast.Primitive { return &ast.Primitive{Kind: ast.I32} }
func I64() *ast.Primitive { return &ast.Primitive{Kind: ast.I64} }
func U8() *ast.Primitive  { return &ast.Primitive{Kind: ast.U8} }
func U16() *ast.Primitive { return &ast.Primitive{Kind: ast.U16} }
func U32() *ast.Primitive { return &ast.Primitive{Kind: ast.U32} }
func U64() *ast.Primitive { return &ast.Primitive{Kind: ast.U64} }
func F32() *ast.Primitive { return &ast.Primitive{Kind: ast.F32} }
func F64() *ast.Primitive { return &ast.Primitive{Kind: ast.F64} }

// NamedType references a struct-like type by name.
func NamedType(name string) *ast.Type {
	return &ast.Type{Name: name}
}

func PointerOf(n ast.Node) *ast.PointerOf {
	return &ast.PointerOf{Node: n}
}

// ArrayOf wraps n into an array node. Size 0 means unsized.
func ArrayOf(n ast.Node, size uint) *ast.ArrayOf {
	return &ast.ArrayOf{Node: n, Size: size}
}

func Static(n ast.Node) *ast.Static {
	return &ast.Static{Node: n}
}

func DeclLocal(name string, typ ast.Node) *ast.DeclLocal {
	return &ast.DeclLocal{Name: name, Type: typ}
}

func Literal[T ast.Value](v T) *ast.Literal[T] {
	return &ast.Literal[T]{Value: v}
}

func Local(name string) *ast.Local {
	return &ast.Local{Name: name}
}

func Field(owner ast.Node, name string) *ast.Field {
	return &ast.Field{Owner: owner, Name: name}
}

// DeclType defines a struct-like type; fields are emitted in argument
// order.
func DeclType(name string, fields ...ast.Node) *ast.DeclType {
	return &ast.DeclType{Name: name, Fields: fields}
}

func Call(callee ast.Node, args ...ast.Node) *ast.Call {
	return &ast.Call{Callee: callee, Args: args}
}

func GetRef(n ast.Node) *ast.GetRef {
	return &ast.GetRef{Node: n}
}
