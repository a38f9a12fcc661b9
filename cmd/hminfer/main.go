// Command hminfer is a small demo driver for the constraint-solving
// type inference engine in internal/rules: it builds a handful of
// example expressions with internal/ast's node builders, runs them
// through the solver, and prints the inferred type or the classified
// error. It is not a REPL and does not parse any surface syntax —
// those are explicitly out of scope for the engine this command
// demonstrates.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/sunholo/hminfer/internal/ast"
	"github.com/sunholo/hminfer/internal/errs"
	"github.com/sunholo/hminfer/internal/registry"
	"github.com/sunholo/hminfer/internal/rules"
	"github.com/sunholo/hminfer/internal/types"
)

var (
	Version = "dev"
	Commit  = "unknown"

	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "print version information")
		onlyFlag    = flag.String("only", "", "run a single named scenario")
	)
	flag.Parse()

	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd())

	if *versionFlag {
		fmt.Printf("hminfer %s (%s)\n", Version, Commit)
		return
	}

	fmt.Println(bold("Constraint-solving type inference demo"))
	fmt.Println("========================================")
	fmt.Println()

	for _, sc := range scenarios() {
		if *onlyFlag != "" && sc.name != *onlyFlag {
			continue
		}
		runScenario(sc)
	}
}

type scenario struct {
	name string
	desc string
	expr ast.Expr
}

func scenarios() []scenario {
	return []scenario{
		{
			name: "literal",
			desc: `42`,
			expr: &ast.Literal{Type: types.Ground("Int")},
		},
		{
			name: "identity",
			desc: `\x -> x`,
			expr: &ast.Lambda{Params: []string{"x"}, Body: &ast.Variable{Name: "x"}},
		},
		{
			name: "let-polymorphism",
			desc: `let id = \x -> x in (id id) 42`,
			expr: &ast.Let{
				Bindings: []ast.Binding{
					{Name: "id", Value: &ast.Lambda{Params: []string{"x"}, Body: &ast.Variable{Name: "x"}}},
				},
				Body: &ast.Application{
					Fn: &ast.Application{
						Fn:   &ast.Variable{Name: "id"},
						Args: []ast.Expr{&ast.Variable{Name: "id"}},
					},
					Args: []ast.Expr{&ast.Literal{Type: types.Ground("Int")}},
				},
			},
		},
		{
			name: "if-branch-mismatch",
			desc: `if true then 1 else "no"`,
			expr: &ast.If{
				Test: &ast.Literal{Type: types.Ground("Bool")},
				Then: &ast.Literal{Type: types.Ground("Int")},
				Else: &ast.Literal{Type: types.Ground("String")},
			},
		},
	}
}

func runScenario(sc scenario) {
	fmt.Printf("%s %s\n", cyan(sc.name+":"), sc.desc)

	r := rules.New()
	reg := registry.New()

	id, err := sc.expr.AddToRules(r, reg)
	if err != nil {
		printError(err)
		return
	}

	res, err := r.Infer()
	if err != nil {
		printError(err)
		return
	}

	closed := res.GetFullTypeByID(id, types.NewFreeNamer())
	fmt.Printf("  %s %s\n\n", green("=>"), closed.String())
}

func printError(err error) {
	if info, ok := errs.GetInfo(codeOf(err)); ok {
		fmt.Printf("  %s [%s/%s] %s\n\n", red("error:"), info.Code, info.Category, err)
		return
	}
	fmt.Printf("  %s %s\n\n", red("error:"), err)
}

func codeOf(err error) string {
	var incompat *errs.IncompatibleTypes
	if errors.As(err, &incompat) {
		return errs.IC001
	}
	var generic *errs.IncompatibleGeneric
	if errors.As(err, &generic) {
		return errs.IC002
	}
	var unbound *errs.UnboundVariable
	if errors.As(err, &unbound) {
		return errs.UBV001
	}
	var dup *errs.DuplicateRegistration
	if errors.As(err, &dup) {
		return errs.DUP001
	}
	return ""
}
