package guardlint

import (
	"fmt"
	"go/ast"
	"go/types"
	"maps"
	"path"

	"golang.org/x/tools/go/types/typeutil"
)

const clampPkgPath = "github.com/sirkon/clamp"

type packagedFunc struct {
	pkgPath string
	typ     string
	name    string
}

func (f packagedFunc) String() string {
	if f.typ == "" {
		return path.Base(f.pkgPath) + "." + f.name
	}

	return path.Base(f.pkgPath) + "." + f.typ + "." + f.name
}

// FuncRole describes what a call does to a guard.
type FuncRole int

const (
	FuncRoleInvalid FuncRole = iota

	// FuncRoleOpener returns a new guard which must be resolved.
	FuncRoleOpener

	// FuncRoleResolver commits or discards the guard it is called on.
	FuncRoleResolver
)

var funcRoleValueMap = map[FuncRole]string{
	FuncRoleOpener:   "opener",
	FuncRoleResolver: "resolver",
}

func (r FuncRole) String() string {
	v, ok := funcRoleValueMap[r]
	if !ok {
		return fmt.Sprintf("func-role-invalid(%d)", r)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (r *FuncRole) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range funcRoleValueMap {
		if v == text {
			*r = k
			return nil
		}
	}

	return fmt.Errorf("unknown function role %q", text)
}

type knownGuardFuncs struct {
	known map[packagedFunc]FuncRole
}

func newKnownGuardFuncs(custom map[packagedFunc]FuncRole) *knownGuardFuncs {
	predefined := map[packagedFunc]FuncRole{
		{pkgPath: clampPkgPath, name: "NewGuard"}:              FuncRoleOpener,
		{pkgPath: clampPkgPath, typ: "Int", name: "Modify"}:    FuncRoleOpener,
		{pkgPath: clampPkgPath, typ: "Guard", name: "Commit"}:  FuncRoleResolver,
		{pkgPath: clampPkgPath, typ: "Guard", name: "Discard"}: FuncRoleResolver,
	}

	known := maps.Clone(custom)
	if known == nil {
		known = map[packagedFunc]FuncRole{}
	}
	maps.Insert(known, maps.All(predefined))

	return &knownGuardFuncs{
		known: known,
	}
}

// roleOf returns the role of a called function along with its identity.
func (k *knownGuardFuncs) roleOf(info *types.Info, call *ast.CallExpr) (packagedFunc, FuncRole) {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return packagedFunc{}, FuncRoleInvalid
	}

	key := packagedFunc{
		pkgPath: fn.Pkg().Path(),
		name:    fn.Name(),
	}
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		key.typ = receiverName(sig.Recv().Type())
	}

	return key, k.known[key]
}

func receiverName(t types.Type) string {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	if n, ok := t.(*types.Named); ok {
		return n.Origin().Obj().Name()
	}

	return ""
}
