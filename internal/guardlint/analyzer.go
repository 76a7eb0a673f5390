// Package guardlint reports clamp guards opened and then left unresolved.
//
// A guard assigned to a local variable must be committed or discarded within
// the same function unless it leaves the function: gets returned, passed to a
// call or stored elsewhere. The check is flow insensitive, a single resolving
// call on any path is enough.
package guardlint

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/clamp/rules"
)

const doc = `guardlint checks that clamp guards are committed or discarded`

// Analyzer checks guards of github.com/sirkon/clamp and the functions listed
// in a YAML file given with -config.
var Analyzer = New(nil)

// New creates an analyzer. A nil config means the one read from the -config
// flag, if any.
func New(cfg *Config) *analysis.Analyzer {
	l := &linter{cfg: cfg}

	a := &analysis.Analyzer{
		Name:     "guardlint",
		Doc:      doc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      l.run,
	}
	a.Flags.StringVar(&l.configPath, "config", "", "YAML file with extra guard openers and resolvers")

	return a
}

type linter struct {
	cfg        *Config
	configPath string

	once  sync.Once
	funcs *knownGuardFuncs
	err   error
}

func (l *linter) known() (*knownGuardFuncs, error) {
	l.once.Do(func() {
		cfg := l.cfg
		if cfg == nil && l.configPath != "" {
			cfg, l.err = LoadConfig(l.configPath)
		}
		l.funcs = newKnownGuardFuncs(cfg.custom())
	})

	return l.funcs, l.err
}

func (l *linter) run(pass *analysis.Pass) (any, error) {
	funcs, err := l.known()
	if err != nil {
		return nil, err
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	var reporter Reporter

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		n := node.(*ast.FuncDecl)
		if n.Body == nil {
			return
		}

		checkGuards(n, funcs, pass.TypesInfo, &reporter)
	})
	reporter.Flush(pass)

	return nil, nil
}

type openedGuard struct {
	opener  packagedFunc
	pos     token.Pos
	escaped bool
}

// checkGuards does:
//
//   - Reports opener calls whose result is dropped right away.
//   - Collects local variables holding opened guards.
//   - Collects variables resolving calls are made on.
//   - Marks variables used in any way other than a selector as escaped.
func checkGuards(f *ast.FuncDecl, funcs *knownGuardFuncs, info *types.Info, r *Reporter) {
	opens := r.Phase(ReportOpen)
	usage := r.Phase(ReportUsage)

	guards := map[types.Object]*openedGuard{}
	var order []types.Object
	resolved := map[types.Object]bool{}

	walk(f.Body, func(n, parent ast.Node) {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return
		}

		fn, role := funcs.roleOf(info, call)
		switch role {
		case FuncRoleResolver:
			if obj := receiverObject(info, call); obj != nil {
				resolved[obj] = true
			}
			return
		case FuncRoleOpener:
		default:
			return
		}

		var holder ast.Expr
		switch p := parent.(type) {
		case *ast.ExprStmt, *ast.DeferStmt, *ast.GoStmt:
			opens.Report(rules.UnresolvedGuard(), discarded(fn), call.Pos())
			return
		case *ast.AssignStmt:
			holder = pairedWith(p.Lhs, p.Rhs, call)
		case *ast.ValueSpec:
			if i := slices.Index(p.Values, ast.Expr(call)); i >= 0 && len(p.Names) == len(p.Values) {
				holder = p.Names[i]
			}
		}

		id, ok := holder.(*ast.Ident)
		if !ok {
			// Returned, passed along or stored elsewhere.
			return
		}
		if id.Name == "_" {
			opens.Report(rules.UnresolvedGuard(), discarded(fn), call.Pos())
			return
		}

		obj := info.ObjectOf(id)
		if obj == nil {
			return
		}
		if _, seen := guards[obj]; !seen {
			order = append(order, obj)
			guards[obj] = &openedGuard{
				opener: fn,
				pos:    call.Pos(),
			}
		}
	})

	if len(guards) == 0 {
		return
	}

	walk(f.Body, func(n, parent ast.Node) {
		id, ok := n.(*ast.Ident)
		if !ok {
			return
		}
		g := guards[info.Uses[id]]
		if g == nil {
			return
		}

		switch p := parent.(type) {
		case *ast.SelectorExpr:
			if p.X == id {
				return
			}
		case *ast.AssignStmt:
			if slices.Contains(p.Lhs, ast.Expr(id)) {
				return
			}
		}
		g.escaped = true
	})

	for _, obj := range order {
		g := guards[obj]
		if g.escaped || resolved[obj] {
			continue
		}

		usage.Report(
			rules.UnresolvedGuard(),
			fmt.Sprintf("guard opened by %s is neither committed nor discarded", g.opener),
			g.pos,
		)
	}
}

func discarded(fn packagedFunc) string {
	return fmt.Sprintf("result of %s is discarded", fn)
}

// pairedWith returns the left hand side expression the given call is assigned to.
func pairedWith(lhs, rhs []ast.Expr, call *ast.CallExpr) ast.Expr {
	if len(lhs) != len(rhs) {
		return nil
	}

	i := slices.Index(rhs, ast.Expr(call))
	if i < 0 {
		return nil
	}

	return lhs[i]
}

// receiverObject returns the variable a method is called on.
func receiverObject(info *types.Info, call *ast.CallExpr) types.Object {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil
	}
	id, ok := sel.X.(*ast.Ident)
	if !ok {
		return nil
	}

	return info.Uses[id]
}

// walk visits every node under root along with its parent.
func walk(root ast.Node, visit func(n, parent ast.Node)) {
	var stack []ast.Node
	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}

		var parent ast.Node
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
		}
		visit(n, parent)
		stack = append(stack, n)

		return true
	})
}
