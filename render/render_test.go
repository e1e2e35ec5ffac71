package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/cgen"
	"github.com/slowlang/cgen/ast"
	"github.com/slowlang/cgen/render"
)

func TestPrimitive(t *testing.T) {
	g := render.New()

	for _, tc := range []struct {
		node ast.Node
		want string
	}{
		{cgen.I8(), "char"},
		{cgen.I16(), "short"},
		{cgen.I32(), "int"},
		{cgen.I64(), "long"},
		{cgen.U8(), "unsigned char"},
		{cgen.U16(), "unsigned short"},
		{cgen.U32(), "unsigned int"},
		{cgen.U64(), "unsigned long"},
		{cgen.F32(), "float"},
		{cgen.F64(), "double"},
	} {
		got, err := g.Render(tc.node)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestUnknownKind(t *testing.T) {
	_, err := render.New().Render(&ast.Primitive{Kind: ast.Kind(99)})
	assert.Error(t, err)
}

func TestDeclareLocal(t *testing.T) {
	st := &ast.Static{Node: &ast.DeclLocal{}}

	l, ok := ast.As[*ast.DeclLocal](st.Node)
	require.True(t, ok)

	l.Name = "x"
	l.Type = cgen.U8()

	got, err := render.New().Render(st)
	require.NoError(t, err)
	assert.Equal(t, "static unsigned char x", got)
}

func TestBlock(t *testing.T) {
	bl := &ast.Block{}
	bl.Push(cgen.DeclLocal("x", cgen.PointerOf(cgen.U8())))

	got, err := render.New().Render(bl)
	require.NoError(t, err)
	assert.Equal(t, "{unsigned char* x;}", got)
}

func TestEmptyBlock(t *testing.T) {
	got, err := render.New().Render(&ast.Block{})
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestFunction(t *testing.T) {
	body := &ast.Block{}
	body.Push(cgen.DeclLocal("l0", cgen.U8()))
	body.Push(&ast.Return{Node: cgen.Literal(0)})

	f := &ast.Function{
		Name:       "main",
		ReturnType: cgen.I32(),
		Parameters: []ast.Node{
			cgen.DeclLocal("a0", cgen.I32()),
			cgen.ArrayOf(cgen.DeclLocal("a1", cgen.PointerOf(cgen.I8())), 0),
		},
		Body: body,
	}

	got, err := render.New().Render(f)
	require.NoError(t, err)
	assert.Equal(t, "int main(int a0, char* a1[]){unsigned char l0;return 0;}", got)
}

func TestFunctionNoParams(t *testing.T) {
	f := &ast.Function{Name: "f", ReturnType: cgen.I32(), Body: &ast.Block{}}

	got, err := render.New().Render(f)
	require.NoError(t, err)
	assert.Equal(t, "int f(){}", got)
}

func TestStruct(t *testing.T) {
	g := render.New()

	typ := cgen.DeclType("Point",
		cgen.DeclLocal("p0", cgen.I32()),
		cgen.DeclLocal("p1", cgen.I8()),
	)

	got, err := g.Render(typ)
	require.NoError(t, err)
	assert.Equal(t, "struct Point{int p0;char p1;};", got)

	got, err = g.Render(cgen.Field(cgen.Local("a"), "p0"))
	require.NoError(t, err)
	assert.Equal(t, "a.p0", got)
}

func TestCall(t *testing.T) {
	g := render.New()

	got, err := g.Render(cgen.Call(cgen.Local("foo"), cgen.Literal(1), cgen.Literal(2)))
	require.NoError(t, err)
	assert.Equal(t, "foo(1,2)", got)

	got, err = g.Render(cgen.Call(cgen.Local("bar")))
	require.NoError(t, err)
	assert.Equal(t, "bar()", got)
}

func TestPointer(t *testing.T) {
	got, err := render.New().Render(cgen.PointerOf(cgen.I32()))
	require.NoError(t, err)
	assert.Equal(t, "int*", got)
}

func TestArray(t *testing.T) {
	g := render.New()

	got, err := g.Render(cgen.ArrayOf(cgen.I32(), 4))
	require.NoError(t, err)
	assert.Equal(t, "int[4]", got)

	got, err = g.Render(cgen.ArrayOf(cgen.I32(), 0))
	require.NoError(t, err)
	assert.Equal(t, "int[]", got)
}

func TestNamedType(t *testing.T) {
	got, err := render.New().Render(cgen.NamedType("Point"))
	require.NoError(t, err)
	assert.Equal(t, "struct Point", got)
}

func TestAssignDerefGetRef(t *testing.T) {
	g := render.New()

	a := &ast.Assign{
		Lhs: &ast.Deref{Node: cgen.Local("p")},
		Rhs: cgen.Literal(1),
	}

	got, err := g.Render(a)
	require.NoError(t, err)
	assert.Equal(t, "(*p) = 1", got)

	got, err = g.Render(cgen.GetRef(cgen.Local("p")))
	require.NoError(t, err)
	assert.Equal(t, "(&p)", got)
}

func TestLiterals(t *testing.T) {
	g := render.New()

	for _, tc := range []struct {
		node ast.Node
		want string
	}{
		{cgen.Literal(0), "0"},
		{cgen.Literal(-3), "-3"},
		{cgen.Literal(uint64(18446744073709551615)), "18446744073709551615"},
		{cgen.Literal(1.5), "1.5"},
		{cgen.Literal("hello"), `"hello"`},
		{cgen.Literal(ast.Char('c')), "'c'"},
	} {
		got, err := g.Render(tc.node)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestProgram(t *testing.T) {
	p := &ast.Program{}
	p.Push(&ast.Function{Name: "f", ReturnType: cgen.I32(), Body: &ast.Block{}})
	p.Push(&ast.Function{Name: "g", ReturnType: cgen.I32(), Body: &ast.Block{}})

	got, err := render.New().Render(p)
	require.NoError(t, err)
	assert.Equal(t, "int f(){};int g(){};", got)
}

func TestNestedBlockTerminator(t *testing.T) {
	outer := &ast.Block{}
	outer.Push(&ast.Block{})

	// every block entry gets a terminator, nested blocks included
	got, err := render.New().Render(outer)
	require.NoError(t, err)
	assert.Equal(t, "{{};}", got)
}

func TestRenderTwice(t *testing.T) {
	f := &ast.Function{
		Name:       "f",
		ReturnType: cgen.PointerOf(cgen.F64()),
		Body:       &ast.Block{},
	}

	g := render.New()

	first, err := g.Render(f)
	require.NoError(t, err)

	second, err := g.Render(f)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIncomplete(t *testing.T) {
	g := render.New()

	for _, tc := range []struct {
		name string
		node ast.Node
	}{
		{"decl local", &ast.DeclLocal{Name: "x"}},
		{"pointer", &ast.PointerOf{}},
		{"array", &ast.ArrayOf{Size: 2}},
		{"static", &ast.Static{}},
		{"assign lhs", &ast.Assign{Rhs: cgen.Literal(1)}},
		{"assign rhs", &ast.Assign{Lhs: cgen.Local("x")}},
		{"function return type", &ast.Function{Name: "f", Body: &ast.Block{}}},
		{"function body", &ast.Function{Name: "f", ReturnType: cgen.I32()}},
		{"return", &ast.Return{}},
		{"field", &ast.Field{Name: "n"}},
		{"deref", &ast.Deref{}},
		{"getref", &ast.GetRef{}},
		{"call", &ast.Call{}},
	} {
		_, err := g.Render(tc.node)
		assert.Error(t, err, tc.name)
	}
}

func TestIncompleteWrapped(t *testing.T) {
	bl := &ast.Block{}
	bl.Push(&ast.Return{})

	_, err := render.New().Render(bl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}
