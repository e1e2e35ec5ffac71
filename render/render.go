// Package render converts syntax trees into C-like source text.
package render

import (
	"strconv"

	"tlog.app/go/errors"

	"github.com/slowlang/cgen/ast"
)

// CGen is the code generating visitor. It holds no state: rendering is
// deterministic, read-only and safe to repeat on the same tree.
type CGen struct{}

func New() *CGen {
	return &CGen{}
}

// Render walks the tree bottom-up and returns the produced source text.
func (g *CGen) Render(root ast.Node) (string, error) {
	b, err := g.Append(nil, root)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Append renders the node into b.
func (g *CGen) Append(b []byte, n ast.Node) ([]byte, error) {
	return ast.Accept(b, g, n)
}

func (g *CGen) VisitProgram(b []byte, x *ast.Program) (_ []byte, err error) {
	for i, n := range x.Nodes {
		b, err = g.Append(b, n)
		if err != nil {
			return nil, errors.Wrap(err, "decl %d", i)
		}

		b = append(b, ';')
	}

	return b, nil
}

func (g *CGen) VisitPrimitive(b []byte, x *ast.Primitive) ([]byte, error) {
	switch x.Kind {
	case ast.I8:
		b = append(b, "char"...)
	case ast.I16:
		b = append(b, "short"...)
	case ast.I32:
		b = append(b, "int"...)
	case ast.I64:
		b = append(b, "long"...)
	case ast.U8:
		b = append(b, "unsigned char"...)
	case ast.U16:
		b = append(b, "unsigned short"...)
	case ast.U32:
		b = append(b, "unsigned int"...)
	case ast.U64:
		b = append(b, "unsigned long"...)
	case ast.F32:
		b = append(b, "float"...)
	case ast.F64:
		b = append(b, "double"...)
	default:
		return nil, errors.New("unsupported kind: %v", x.Kind)
	}

	return b, nil
}

func (g *CGen) VisitType(b []byte, x *ast.Type) ([]byte, error) {
	b = append(b, "struct "...)
	b = append(b, x.Name...)

	return b, nil
}

func (g *CGen) VisitPointerOf(b []byte, x *ast.PointerOf) (_ []byte, err error) {
	if x.Node == nil {
		return nil, errors.New("incomplete node: PointerOf missing inner")
	}

	b, err = g.Append(b, x.Node)
	if err != nil {
		return nil, errors.Wrap(err, "inner")
	}

	b = append(b, '*')

	return b, nil
}

func (g *CGen) VisitArrayOf(b []byte, x *ast.ArrayOf) (_ []byte, err error) {
	if x.Node == nil {
		return nil, errors.New("incomplete node: ArrayOf missing inner")
	}

	b, err = g.Append(b, x.Node)
	if err != nil {
		return nil, errors.Wrap(err, "inner")
	}

	b = append(b, '[')

	if x.Size > 0 {
		b = strconv.AppendUint(b, uint64(x.Size), 10)
	}

	b = append(b, ']')

	return b, nil
}

func (g *CGen) VisitStatic(b []byte, x *ast.Static) (_ []byte, err error) {
	if x.Node == nil {
		return nil, errors.New("incomplete node: Static missing inner")
	}

	b = append(b, "static "...)

	b, err = g.Append(b, x.Node)
	if err != nil {
		return nil, errors.Wrap(err, "inner")
	}

	return b, nil
}

func (g *CGen) VisitLiteral(b []byte, x ast.Lit) ([]byte, error) {
	return x.AppendValue(b), nil
}

func (g *CGen) VisitDeclLocal(b []byte, x *ast.DeclLocal) (_ []byte, err error) {
	if x.Type == nil {
		return nil, errors.New("incomplete node: DeclLocal %q missing type", x.Name)
	}

	b, err = g.Append(b, x.Type)
	if err != nil {
		return nil, errors.Wrap(err, "type")
	}

	b = append(b, ' ')
	b = append(b, x.Name...)

	return b, nil
}

func (g *CGen) VisitAssign(b []byte, x *ast.Assign) (_ []byte, err error) {
	if x.Lhs == nil || x.Rhs == nil {
		return nil, errors.New("incomplete node: Assign missing side")
	}

	b, err = g.Append(b, x.Lhs)
	if err != nil {
		return nil, errors.Wrap(err, "lhs")
	}

	b = append(b, " = "...)

	b, err = g.Append(b, x.Rhs)
	if err != nil {
		return nil, errors.Wrap(err, "rhs")
	}

	return b, nil
}

func (g *CGen) VisitBlock(b []byte, x *ast.Block) (_ []byte, err error) {
	b = append(b, '{')

	for i, n := range x.Nodes {
		b, err = g.Append(b, n)
		if err != nil {
			return nil, errors.Wrap(err, "stmt %d", i)
		}

		b = append(b, ';')
	}

	b = append(b, '}')

	return b, nil
}

func (g *CGen) VisitFunction(b []byte, x *ast.Function) (_ []byte, err error) {
	if x.ReturnType == nil {
		return nil, errors.New("incomplete node: Function %q missing return type", x.Name)
	}
	if x.Body == nil {
		return nil, errors.New("incomplete node: Function %q missing body", x.Name)
	}

	b, err = g.Append(b, x.ReturnType)
	if err != nil {
		return nil, errors.Wrap(err, "return type")
	}

	b = append(b, ' ')
	b = append(b, x.Name...)
	b = append(b, '(')

	for i, p := range x.Parameters {
		if i != 0 {
			b = append(b, ", "...)
		}

		b, err = g.Append(b, p)
		if err != nil {
			return nil, errors.Wrap(err, "param %d", i)
		}
	}

	b = append(b, ')')

	b, err = g.Append(b, x.Body)
	if err != nil {
		return nil, errors.Wrap(err, "body")
	}

	return b, nil
}

func (g *CGen) VisitReturn(b []byte, x *ast.Return) (_ []byte, err error) {
	if x.Node == nil {
		return nil, errors.New("incomplete node: Return missing value")
	}

	b = append(b, "return "...)

	b, err = g.Append(b, x.Node)
	if err != nil {
		return nil, errors.Wrap(err, "value")
	}

	return b, nil
}

func (g *CGen) VisitField(b []byte, x *ast.Field) (_ []byte, err error) {
	if x.Owner == nil {
		return nil, errors.New("incomplete node: Field %q missing owner", x.Name)
	}

	b, err = g.Append(b, x.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "owner")
	}

	b = append(b, '.')
	b = append(b, x.Name...)

	return b, nil
}

func (g *CGen) VisitDeclType(b []byte, x *ast.DeclType) (_ []byte, err error) {
	b = append(b, "struct "...)
	b = append(b, x.Name...)
	b = append(b, '{')

	for i, f := range x.Fields {
		b, err = g.Append(b, f)
		if err != nil {
			return nil, errors.Wrap(err, "field %d", i)
		}

		b = append(b, ';')
	}

	b = append(b, "};"...)

	return b, nil
}

func (g *CGen) VisitDeref(b []byte, x *ast.Deref) (_ []byte, err error) {
	if x.Node == nil {
		return nil, errors.New("incomplete node: Deref missing inner")
	}

	b = append(b, "(*"...)

	b, err = g.Append(b, x.Node)
	if err != nil {
		return nil, errors.Wrap(err, "inner")
	}

	b = append(b, ')')

	return b, nil
}

func (g *CGen) VisitGetRef(b []byte, x *ast.GetRef) (_ []byte, err error) {
	if x.Node == nil {
		return nil, errors.New("incomplete node: GetRef missing inner")
	}

	b = append(b, "(&"...)

	b, err = g.Append(b, x.Node)
	if err != nil {
		return nil, errors.Wrap(err, "inner")
	}

	b = append(b, ')')

	return b, nil
}

func (g *CGen) VisitLocal(b []byte, x *ast.Local) ([]byte, error) {
	b = append(b, x.Name...)

	return b, nil
}

func (g *CGen) VisitCall(b []byte, x *ast.Call) (_ []byte, err error) {
	if x.Callee == nil {
		return nil, errors.New("incomplete node: Call missing callee")
	}

	b, err = g.Append(b, x.Callee)
	if err != nil {
		return nil, errors.Wrap(err, "callee")
	}

	b = append(b, '(')

	// arguments are joined by a bare comma, unlike function parameters
	for i, a := range x.Args {
		if i != 0 {
			b = append(b, ',')
		}

		b, err = g.Append(b, a)
		if err != nil {
			return nil, errors.Wrap(err, "arg %d", i)
		}
	}

	b = append(b, ')')

	return b, nil
}
