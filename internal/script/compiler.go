package script

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/setupvar/builder/internal/ifr"
	"github.com/setupvar/builder/internal/logging"
)

// Command is the firmware-side tool every directive invokes.
const Command = "setup_var.efi"

// Directive is one compiled command of the output script: an optional
// human-readable comment line and the machine command line.
type Directive struct {
	Comment string // "# <name>: <value>", empty for the reboot directive
	Command string
}

// Script is the result of one compile pass.
type Script struct {
	// Header is an optional attribution comment prepended verbatim as the
	// first lines of the rendered file.
	Header     string
	Directives []Directive
}

// Options controls optional compiler behavior.
type Options struct {
	// Header is prepended to the rendered script when non-empty.
	Header string

	// Reboot appends a trailing read-and-reboot directive so the firmware
	// re-reads its variables after the writes apply.
	Reboot bool

	// AnchorStore/AnchorOffset choose which setting the reboot directive
	// reads. When empty, the first setting in model order is used.
	AnchorStore  string
	AnchorOffset string
}

// choiceKind discriminates the variant of a selection value.
type choiceKind int

const (
	choiceOption choiceKind = iota
	choiceNumber
	choiceToggle
)

type choice struct {
	kind    choiceKind
	label   string
	number  int64
	enabled bool
}

// Selection holds the user's chosen value per (store, offset). Settings
// with no selection are left unset and compile to nothing.
type Selection struct {
	choices map[string]map[string]choice
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{choices: make(map[string]map[string]choice)}
}

func (s *Selection) put(store, offset string, c choice) {
	byOffset, ok := s.choices[store]
	if !ok {
		byOffset = make(map[string]choice)
		s.choices[store] = byOffset
	}
	byOffset[offset] = c
}

// ChooseOption selects an option label for a one-of setting.
func (s *Selection) ChooseOption(store, offset, label string) {
	s.put(store, offset, choice{kind: choiceOption, label: label})
}

// ChooseNumber selects an integer value for a numeric setting.
func (s *Selection) ChooseNumber(store, offset string, value int64) {
	s.put(store, offset, choice{kind: choiceNumber, number: value})
}

// ChooseToggle selects the enabled state for a checkbox setting.
func (s *Selection) ChooseToggle(store, offset string, enabled bool) {
	s.put(store, offset, choice{kind: choiceToggle, enabled: enabled})
}

// Len returns the number of selected settings.
func (s *Selection) Len() int {
	n := 0
	for _, byOffset := range s.choices {
		n += len(byOffset)
	}
	return n
}

func (s *Selection) get(store, offset string) (choice, bool) {
	byOffset, ok := s.choices[store]
	if !ok {
		return choice{}, false
	}
	c, ok := byOffset[offset]
	return c, ok
}

// Compile turns a settings model and a user selection into an ordered
// script. One directive is emitted per selected setting whose value
// differs from the declared default; a selection equal to the default is a
// no-op and produces nothing. A setting with no declared default but a
// selection is always emitted, there is nothing to compare against.
//
// Directive order follows model order (stores, then offsets, in encounter
// order), so a deterministic parse yields a deterministic script. A nil or
// empty model compiles to an empty script regardless of selections.
func Compile(model *ifr.Model, sel *Selection, opts Options) *Script {
	out := &Script{Header: opts.Header}
	if model == nil || sel == nil {
		return out
	}

	skipped := 0
	model.Each(func(store, offset string, s ifr.Setting) {
		c, ok := sel.get(store, offset)
		if !ok {
			return
		}
		d, ok := compileOne(store, offset, s, c)
		if !ok {
			skipped++
			return
		}
		out.Directives = append(out.Directives, d)
	})

	if opts.Reboot {
		if d, ok := rebootDirective(model, opts); ok {
			out.Directives = append(out.Directives, d)
		}
	}

	logging.Debug("compiled script",
		zap.Int("selections", sel.Len()),
		zap.Int("directives", len(out.Directives)),
		zap.Int("skipped", skipped),
	)

	return out
}

// compileOne builds the write directive for a single selected setting.
// The second return value is false when the selection equals the default
// or does not fit the setting's variant.
func compileOne(store, offset string, s ifr.Setting, c choice) (Directive, bool) {
	switch v := s.(type) {
	case *ifr.OneOf:
		if c.kind != choiceOption {
			return Directive{}, false
		}
		if v.DefaultSet && c.label == v.Default {
			return Directive{}, false
		}
		raw, ok := v.Option(c.label)
		if !ok {
			return Directive{}, false
		}
		return writeDirective(v.Name, c.label, offset, raw, v.Size, store), true

	case *ifr.Numeric:
		if c.kind != choiceNumber {
			return Directive{}, false
		}
		if v.DefaultSet && c.number == v.Default {
			return Directive{}, false
		}
		value := fmt.Sprintf("0x%X", c.number)
		return writeDirective(v.Name, fmt.Sprintf("%d", c.number), offset, value, v.Size, store), true

	case *ifr.CheckBox:
		if c.kind != choiceToggle {
			return Directive{}, false
		}
		if c.enabled == (v.Default == ifr.Enabled) {
			return Directive{}, false
		}
		value, label := "0x0", string(ifr.Disabled)
		if c.enabled {
			value, label = "0x1", string(ifr.Enabled)
		}
		return writeDirective(v.Name, label, offset, value, "0x1", store), true
	}
	return Directive{}, false
}

func writeDirective(name, human, offset, value, size, store string) Directive {
	return Directive{
		Comment: fmt.Sprintf("# %s: %s", name, human),
		Command: fmt.Sprintf("%s %s %s -s %s -n %s", Command, offset, value, size, store),
	}
}

// rebootDirective builds the trailing read-and-reboot command, anchored at
// the configured setting or at the first model row.
func rebootDirective(model *ifr.Model, opts Options) (Directive, bool) {
	store, offset := opts.AnchorStore, opts.AnchorOffset
	if store == "" || offset == "" {
		var ok bool
		store, offset, _, ok = model.First()
		if !ok {
			return Directive{}, false
		}
	} else if _, ok := model.Get(store, offset); !ok {
		return Directive{}, false
	}
	return Directive{
		Command: fmt.Sprintf("%s %s -n %s -r", Command, offset, store),
	}, true
}

// Render serializes the script: the optional header, then each directive
// as its comment line (when present) and command line, directives
// separated by blank lines.
func (s *Script) Render() string {
	var b strings.Builder

	if s.Header != "" {
		b.WriteString(s.Header)
		if !strings.HasSuffix(s.Header, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for _, d := range s.Directives {
		if d.Comment != "" {
			b.WriteString(d.Comment)
			b.WriteString("\n")
		}
		b.WriteString(d.Command)
		b.WriteString("\n\n")
	}

	return b.String()
}

// Empty reports whether the script contains no directives.
func (s *Script) Empty() bool {
	return len(s.Directives) == 0
}
