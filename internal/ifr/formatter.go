package ifr

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the model
func (m *Model) Summary() string {
	return fmt.Sprintf("%d setting(s) across %d store(s)", m.Len(), len(m.Stores()))
}

// FormatCompact returns one line per setting, suitable for grepping
func (m *Model) FormatCompact() string {
	var b strings.Builder

	m.Each(func(store, offset string, s Setting) {
		switch v := s.(type) {
		case *OneOf:
			def := "-"
			if v.DefaultSet {
				def = v.Default
			}
			b.WriteString(fmt.Sprintf("%s %s oneof %q options=%d default=%s\n",
				store, offset, v.Name, len(v.Options), def))
		case *Numeric:
			def := "-"
			if v.DefaultSet {
				def = fmt.Sprintf("%d", v.Default)
			}
			b.WriteString(fmt.Sprintf("%s %s numeric %q min=%d max=%d default=%s\n",
				store, offset, v.Name, v.Min, v.Max, def))
		case *CheckBox:
			b.WriteString(fmt.Sprintf("%s %s checkbox %q default=%s\n",
				store, offset, v.Name, v.Default))
		}
	})

	return b.String()
}

// FormatDetailed returns a multi-line listing grouped by variable store,
// with each setting's options, bounds and defaults
func (m *Model) FormatDetailed() string {
	var b strings.Builder

	for _, store := range m.Stores() {
		b.WriteString(fmt.Sprintf("=== VarStore %q ===\n", store))
		for _, offset := range m.Offsets(store) {
			s, _ := m.Get(store, offset)
			switch v := s.(type) {
			case *OneOf:
				b.WriteString(fmt.Sprintf("%s  %s (one-of, size %s)\n", offset, v.Name, v.Size))
				for _, opt := range v.Options {
					marker := " "
					if v.DefaultSet && opt.Label == v.Default {
						marker = "*"
					}
					b.WriteString(fmt.Sprintf("      %s %s = %s\n", marker, opt.Label, opt.Value))
				}
			case *Numeric:
				b.WriteString(fmt.Sprintf("%s  %s (numeric, size %s)\n", offset, v.Name, v.Size))
				if v.DefaultSet {
					b.WriteString(fmt.Sprintf("        range %d..%d, default %d\n", v.Min, v.Max, v.Default))
				} else {
					b.WriteString(fmt.Sprintf("        range %d..%d\n", v.Min, v.Max))
				}
			case *CheckBox:
				b.WriteString(fmt.Sprintf("%s  %s (checkbox, default %s)\n", offset, v.Name, v.Default))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
