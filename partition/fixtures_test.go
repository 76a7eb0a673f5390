package partition

import (
	"embed"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/clamp/domain"
	"github.com/sirkon/clamp/rules"
)

//go:embed testdata
var fixtures embed.FS

type fixtureCase struct {
	Name      string           `yaml:"name"`
	Partition fixturePartition `yaml:"partition"`
	Expect    outcome          `yaml:"expect"`
}

type fixturePartition struct {
	Name    string          `yaml:"name"`
	Kind    domain.Kind     `yaml:"kind"`
	Bound   string          `yaml:"bound"`
	Members []fixtureMember `yaml:"members"`
}

type fixtureMember struct {
	Exact    string            `yaml:"exact"`
	Range    string            `yaml:"range"`
	CatchAll string            `yaml:"catchall"`
	Nested   *fixturePartition `yaml:"nested"`
	Values   []string          `yaml:"values"`
}

// outcome is what a fixture expects from validation.
type outcome struct {
	Rule     string            `yaml:"rule"`
	Error    string            `yaml:"error"`
	Ranges   []string          `yaml:"ranges"`
	Exacts   []string          `yaml:"exacts"`
	Covered  bool              `yaml:"covered"`
	Classify map[string]string `yaml:"classify"`
}

// build turns the fixture into a partition. Nested partitions without a kind
// inherit the parent one.
func (fp *fixturePartition) build(inherited domain.Kind) (*Partition, error) {
	kind := fp.Kind
	if kind == domain.KindInvalid {
		kind = inherited
	}

	p := New(fp.Name, kind)
	if fp.Bound != "" {
		r, err := domain.ParseRange(kind, fp.Bound)
		if err != nil {
			return nil, fmt.Errorf("parse bound of %s: %w", fp.Name, err)
		}
		p.WithBound(r)
	}

	for _, fm := range fp.Members {
		switch {
		case fm.Exact != "":
			var values []domain.Value
			for _, s := range fm.Values {
				v, err := domain.Parse(kind, s)
				if err != nil {
					return nil, fmt.Errorf("parse value of %s: %w", fm.Exact, err)
				}
				values = append(values, v)
			}
			p.Members = append(p.Members, Exact(fm.Exact, values...))

		case fm.Range != "":
			var ranges []domain.Range
			for _, s := range fm.Values {
				r, err := domain.ParseRange(kind, s)
				if err != nil {
					return nil, fmt.Errorf("parse range of %s: %w", fm.Range, err)
				}
				ranges = append(ranges, r)
			}
			p.Members = append(p.Members, Ranges(fm.Range, ranges...))

		case fm.CatchAll != "":
			p.Members = append(p.Members, CatchAll(fm.CatchAll))

		case fm.Nested != nil:
			child, err := fm.Nested.build(kind)
			if err != nil {
				return nil, err
			}
			p.Members = append(p.Members, Nested(fm.Nested.Name, child))

		default:
			return nil, fmt.Errorf("member of %s has no type", fp.Name)
		}
	}

	return p, nil
}

func observe(p *Partition, probes map[string]string) (outcome, error) {
	var res outcome

	r, err := Validate(p)
	if err != nil {
		res.Error = err.Error()
		var ruled interface{ Rule() rules.Rule }
		if errors.As(err, &ruled) {
			res.Rule = ruled.Rule().String()
		}
		return res, nil
	}

	res.Covered = r.Covered
	for _, s := range r.Ranges {
		res.Ranges = append(res.Ranges, s.String())
	}
	for _, v := range r.Exacts {
		res.Exacts = append(res.Exacts, v.String())
	}

	if probes != nil {
		res.Classify = map[string]string{}
		for probe := range probes {
			v, err := domain.Parse(p.Kind, probe)
			if err != nil {
				return res, fmt.Errorf("parse probe %q: %w", probe, err)
			}
			path, _ := r.Classify(v)
			res.Classify[probe] = strings.Join(path, ".")
		}
	}

	return res, nil
}

func TestFixtures(t *testing.T) {
	files, err := fixtures.ReadDir("testdata")
	if err != nil {
		t.Fatal(fmt.Errorf("list fixture files: %w", err))
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".yaml") {
			continue
		}

		data, err := fixtures.ReadFile("testdata/" + file.Name())
		if err != nil {
			t.Fatalf("read file %s: %s", file.Name(), err)
		}

		var cases []fixtureCase
		if err := yaml.Unmarshal(data, &cases); err != nil {
			t.Fatalf("decode file %s: %s", file.Name(), err)
		}

		for _, tc := range cases {
			t.Run(strings.TrimSuffix(file.Name(), ".yaml")+"/"+tc.Name, func(t *testing.T) {
				p, err := tc.Partition.build(domain.KindInvalid)
				if err != nil {
					t.Fatal(err)
				}

				got, err := observe(p, tc.Expect.Classify)
				if err != nil {
					t.Fatal(err)
				}

				if !reflect.DeepEqual(tc.Expect, got) {
					t.Error("unexpected validation outcome")
					deepequal.SideBySide(t, "outcome", tc.Expect, got)
				}
			})
		}
	}
}
