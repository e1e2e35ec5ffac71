package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/cgen"
	"github.com/slowlang/cgen/ast"
	"github.com/slowlang/cgen/render"
)

func main() {
	app := &cli.Command{
		Name:        "cgen",
		Description: "cgen builds a sample C-like syntax tree and prints the generated source",
		Action:      exampleAct,
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func exampleAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "render example")
	defer tr.Finish("err", &err)

	p := &ast.Program{}

	p.Push(cgen.DeclType("Point",
		cgen.DeclLocal("x", cgen.I32()),
		cgen.DeclLocal("y", cgen.I32()),
	))

	body := &ast.Block{}
	body.Push(cgen.DeclLocal("p", cgen.NamedType("Point")))
	body.Push(&ast.Assign{Lhs: cgen.Field(cgen.Local("p"), "x"), Rhs: cgen.Literal(0)})
	body.Push(cgen.Call(cgen.Local("move"), cgen.GetRef(cgen.Local("p"))))
	body.Push(&ast.Return{Node: cgen.Field(cgen.Local("p"), "x")})

	p.Push(&ast.Function{
		Name:       "main",
		ReturnType: cgen.I32(),
		Parameters: []ast.Node{
			cgen.DeclLocal("argc", cgen.I32()),
			cgen.ArrayOf(cgen.DeclLocal("argv", cgen.PointerOf(cgen.I8())), 0),
		},
		Body: body,
	})

	text, err := render.New().Render(p)
	if err != nil {
		return errors.Wrap(err, "render")
	}

	tr.Printw("rendered", "bytes", len(text))

	fmt.Printf("%s\n", text)

	return nil
}
