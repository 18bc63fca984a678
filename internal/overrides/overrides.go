package overrides

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/setupvar/builder/internal/ifr"
	"github.com/setupvar/builder/internal/logging"
	"github.com/setupvar/builder/internal/script"
)

// File represents an overrides document.
type File struct {
	Selections []Entry `yaml:"selections"`
	Reboot     bool    `yaml:"reboot,omitempty"` // Append trailing read+reboot directive
}

// Entry represents one requested setting change. Exactly one of Option,
// Value or Enabled must be set, matching the variant of the target
// setting.
type Entry struct {
	Store  string `yaml:"store"`  // VarStore name, e.g. "CpuSetup"
	Offset string `yaml:"offset"` // VarOffset as it appears in the dump, e.g. "0x143"

	Option  *string `yaml:"option,omitempty"`  // One-of option label
	Value   *int64  `yaml:"value,omitempty"`   // Numeric value
	Enabled *bool   `yaml:"enabled,omitempty"` // Checkbox state
}

// Parse decodes an overrides document from r.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse overrides: %w", err)
	}
	return &f, nil
}

// Load reads and decodes the overrides file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open overrides file: %w", err)
	}
	defer f.Close()

	parsed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.Debug("loaded overrides",
		zap.String("path", path),
		zap.Int("selections", len(parsed.Selections)),
		zap.Bool("reboot", parsed.Reboot),
	)

	return parsed, nil
}

// Apply validates every entry against the model and converts the file
// into a compiler selection. Validation is strict: an unknown setting, a
// value of the wrong variant, an unknown option label or an out-of-range
// number all fail with an error naming the offending entry.
func (f *File) Apply(m *ifr.Model) (*script.Selection, error) {
	sel := script.NewSelection()

	for i, e := range f.Selections {
		if e.Store == "" || e.Offset == "" {
			return nil, fmt.Errorf("selection %d: store and offset are required", i)
		}

		s, ok := m.Get(e.Store, e.Offset)
		if !ok {
			return nil, fmt.Errorf("selection %d: no setting at %s/%s", i, e.Store, e.Offset)
		}

		if err := applyEntry(sel, e, s); err != nil {
			return nil, fmt.Errorf("selection %d (%s/%s): %w", i, e.Store, e.Offset, err)
		}
	}

	return sel, nil
}

func applyEntry(sel *script.Selection, e Entry, s ifr.Setting) error {
	if count(e.Option != nil, e.Value != nil, e.Enabled != nil) != 1 {
		return fmt.Errorf("exactly one of option, value or enabled must be set")
	}

	switch v := s.(type) {
	case *ifr.OneOf:
		if e.Option == nil {
			return fmt.Errorf("setting %q is a one-of, use option", v.Name)
		}
		if _, ok := v.Option(*e.Option); !ok {
			return fmt.Errorf("setting %q has no option %q", v.Name, *e.Option)
		}
		sel.ChooseOption(e.Store, e.Offset, *e.Option)

	case *ifr.Numeric:
		if e.Value == nil {
			return fmt.Errorf("setting %q is numeric, use value", v.Name)
		}
		if *e.Value < v.Min || *e.Value > v.Max {
			return fmt.Errorf("setting %q value %d out of range [%d, %d]", v.Name, *e.Value, v.Min, v.Max)
		}
		sel.ChooseNumber(e.Store, e.Offset, *e.Value)

	case *ifr.CheckBox:
		if e.Enabled == nil {
			return fmt.Errorf("setting %q is a checkbox, use enabled", v.Name)
		}
		sel.ChooseToggle(e.Store, e.Offset, *e.Enabled)

	default:
		return fmt.Errorf("unsupported setting type %T", s)
	}

	return nil
}

func count(vs ...bool) int {
	n := 0
	for _, v := range vs {
		if v {
			n++
		}
	}
	return n
}
