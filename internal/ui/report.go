package ui

import (
	"fmt"
	"strings"

	"github.com/setupvar/builder/internal/ifr"
	"github.com/setupvar/builder/internal/script"
)

// RenderModel returns a styled, store-by-store listing of the settings
// model for terminal display. Each store renders as a bordered section
// with one line per setting; one-of settings list their options with the
// default highlighted.
func RenderModel(m *ifr.Model, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var b strings.Builder

	for _, store := range m.Stores() {
		var section strings.Builder
		section.WriteString(StoreTitleStyle.Render(store))
		section.WriteString("\n")

		for _, offset := range m.Offsets(store) {
			s, _ := m.Get(store, offset)
			renderSetting(&section, offset, s)
		}

		b.WriteString(StoreBorderStyle(width).Render(strings.TrimRight(section.String(), "\n")))
		b.WriteString("\n")
	}

	b.WriteString(SummaryStyle.Render(m.Summary()))
	b.WriteString("\n")

	return b.String()
}

func renderSetting(b *strings.Builder, offset string, s ifr.Setting) {
	switch v := s.(type) {
	case *ifr.OneOf:
		b.WriteString(settingLine(offset, v.Name, "one-of"))
		for _, opt := range v.Options {
			style := OptionStyle
			if v.DefaultSet && opt.Label == v.Default {
				style = DefaultOptionStyle
			}
			b.WriteString(style.Render(opt.Label))
			b.WriteString("\n")
		}

	case *ifr.Numeric:
		b.WriteString(settingLine(offset, v.Name, "numeric"))
		detail := fmt.Sprintf("range %d..%d", v.Min, v.Max)
		if v.DefaultSet {
			detail += ", default " + DefaultValueStyle.Render(fmt.Sprintf("%d", v.Default))
		}
		b.WriteString(OptionStyle.Render(detail))
		b.WriteString("\n")

	case *ifr.CheckBox:
		b.WriteString(settingLine(offset, v.Name, "checkbox"))
		b.WriteString(OptionStyle.Render("default " + DefaultValueStyle.Render(string(v.Default))))
		b.WriteString("\n")
	}
}

func settingLine(offset, name, kind string) string {
	return OffsetStyle.Render(offset) + " " +
		SettingNameStyle.Render(name) + " " +
		KindStyle.Render("("+kind+")") + "\n"
}

// RenderScript returns a styled preview of a compiled script for
// terminal display, comment lines muted and command lines plain.
func RenderScript(s *script.Script) string {
	var b strings.Builder
	for _, d := range s.Directives {
		if d.Comment != "" {
			b.WriteString(DirectiveCommentStyle.Render(d.Comment))
			b.WriteString("\n")
		}
		b.WriteString(DirectiveCommandStyle.Render(d.Command))
		b.WriteString("\n\n")
	}
	return b.String()
}

// RenderError returns a styled error line.
func RenderError(err error) string {
	return ErrorMessageStyle.Render("Error: "+err.Error()) + "\n"
}
