package moves

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaultData embed.FS

// DefaultSet is the move set used when a requested set is missing.
const DefaultSet = "standard"

type knockbackDef struct {
	Base   float64 `yaml:"base"`
	Growth float64 `yaml:"growth"`
	Angle  float64 `yaml:"angle"`
}

type moveDef struct {
	ID           string       `yaml:"id"`
	Damage       float64      `yaml:"damage"`
	Knockback    knockbackDef `yaml:"knockback"`
	Hitstun      float64      `yaml:"hitstun"`
	Hitlag       float64      `yaml:"hitlag"`
	Duration     float64      `yaml:"duration"`
	CancelWindow float64      `yaml:"cancel_window"`
	Lift         float64      `yaml:"lift"`
	Next         []string     `yaml:"next"`
}

type setDef struct {
	Name  string    `yaml:"name"`
	Moves []moveDef `yaml:"moves"`
}

// LoadSet decodes one YAML move set.
func LoadSet(r io.Reader) (*Set, error) {
	var def setDef
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("decoding move set: %w", err)
	}

	b := NewBuilder(def.Name)
	for _, md := range def.Moves {
		id, err := ParseMoveID(md.ID)
		if err != nil {
			return nil, fmt.Errorf("move set %q: %w", def.Name, err)
		}
		next := make([]MoveID, 0, len(md.Next))
		for _, n := range md.Next {
			nid, err := ParseMoveID(n)
			if err != nil {
				return nil, fmt.Errorf("move set %q, move %s: %w", def.Name, md.ID, err)
			}
			next = append(next, nid)
		}
		b.Move(id).
			Damage(md.Damage).
			Knockback(md.Knockback.Base, md.Knockback.Growth, md.Knockback.Angle).
			Hitstun(md.Hitstun).
			Hitlag(md.Hitlag).
			Timing(md.Duration, md.CancelWindow).
			Lift(md.Lift).
			Next(next...)
	}
	return b.Build()
}

// Registry holds move sets keyed by name.
type Registry struct {
	sets map[string]*Set
}

func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]*Set)}
}

// Register adds s, overwriting any set with the same name.
func (r *Registry) Register(s *Set) {
	r.sets[s.Name] = s
}

// Get returns the set named name, or (nil, false).
func (r *Registry) Get(name string) (*Set, bool) {
	s, ok := r.sets[name]
	return s, ok
}

// Resolve returns the named set, falling back to DefaultSet. The second result
// is false when the fallback was used.
func (r *Registry) Resolve(name string) (*Set, bool) {
	if s, ok := r.sets[name]; ok {
		return s, true
	}
	return r.sets[DefaultSet], false
}

// Names lists registered sets in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.sets))
	for n := range r.sets {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// LoadRegistry reads every *.yaml file in dir within fsys.
func LoadRegistry(fsys fs.FS, dir string) (*Registry, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no move sets found in %s", dir)
	}
	reg := NewRegistry()
	for _, p := range matches {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		s, err := LoadSet(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", p, err)
		}
		if _, dup := reg.sets[s.Name]; dup {
			return nil, fmt.Errorf("loading %q: duplicate move set %q", p, s.Name)
		}
		reg.Register(s)
	}
	if _, ok := reg.sets[DefaultSet]; !ok {
		return nil, fmt.Errorf("move sets in %s do not define %q", dir, DefaultSet)
	}
	return reg, nil
}

// DefaultRegistry loads the move sets compiled into the binary.
func DefaultRegistry() (*Registry, error) {
	return LoadRegistry(defaultData, "data")
}
