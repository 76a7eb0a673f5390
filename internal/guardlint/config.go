package guardlint

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"go/token"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config lists functions and methods the linter treats as guard openers and
// resolvers in addition to the ones of github.com/sirkon/clamp.
type Config struct {
	Openers   []Reference `yaml:"openers"`
	Resolvers []Reference `yaml:"resolvers"`
}

// LoadConfig reads YAML config from the given file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	// Resolvers are called on a guard, so only methods make sense there.
	for _, ref := range cfg.Resolvers {
		if ref.Type == "" {
			return nil, fmt.Errorf("config %s: resolver %s.%s is not a method", path, ref.Package, ref.Name)
		}
	}

	return &cfg, nil
}

func (c *Config) custom() map[packagedFunc]FuncRole {
	res := map[packagedFunc]FuncRole{}
	if c == nil {
		return res
	}

	for _, ref := range c.Openers {
		res[ref.packagedFunc()] = FuncRoleOpener
	}
	for _, ref := range c.Resolvers {
		res[ref.packagedFunc()] = FuncRoleResolver
	}

	return res
}

// Reference points at a package level function or a method of a named type.
// Its text form is
//
//	"pkg/path".Name
//	"pkg/path".Type.Name
type Reference struct {
	Package string
	Type    string
	Name    string
}

func (r Reference) packagedFunc() packagedFunc {
	return packagedFunc{
		pkgPath: r.Package,
		typ:     r.Type,
		name:    r.Name,
	}
}

var (
	_ encoding.TextUnmarshaler = (*Reference)(nil)
	_ encoding.TextMarshaler   = Reference{}
)

func (r *Reference) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty reference")
	}

	quoted, err := strconv.QuotedPrefix(s)
	if err != nil {
		return fmt.Errorf("reference %q must start with a quoted package path: %w", s, err)
	}
	pkg, err := strconv.Unquote(quoted)
	if err != nil || pkg == "" {
		return fmt.Errorf("invalid package path in reference %q", s)
	}

	rest, ok := strings.CutPrefix(s[len(quoted):], ".")
	if !ok || rest == "" {
		return fmt.Errorf("reference must contain a name: %q", s)
	}

	typ, name, isMethod := strings.Cut(rest, ".")
	if !isMethod {
		typ, name = "", typ
	}
	if !token.IsIdentifier(name) || isMethod && !token.IsIdentifier(typ) {
		return fmt.Errorf("reference %q must end with Name or Type.Name", s)
	}

	*r = Reference{
		Package: pkg,
		Type:    typ,
		Name:    name,
	}
	return nil
}

func (r Reference) MarshalText() ([]byte, error) {
	if r.Package == "" || r.Name == "" {
		return nil, fmt.Errorf("incomplete reference %+v", r)
	}

	res := strconv.Quote(r.Package) + "."
	if r.Type != "" {
		res += r.Type + "."
	}

	return []byte(res + r.Name), nil
}
