package ifr

import (
	"strings"
	"testing"
)

func formatterModel() *Model {
	m := NewModel()
	m.Put("Setup", "0x10", &OneOf{
		Name:       "Fan Mode",
		Size:       "0x1",
		Options:    []Option{{Label: "Auto", Value: "0x0"}, {Label: "Manual", Value: "0x1"}},
		Default:    "Manual",
		DefaultSet: true,
	})
	m.Put("Setup", "0x30", &Numeric{Name: "Boot Delay", Size: "0x1", Min: 0, Max: 10, Default: 5, DefaultSet: true})
	m.Put("PchSetup", "0x20", &CheckBox{Name: "Wake On LAN", Default: Enabled})
	return m
}

func TestSummary(t *testing.T) {
	got := formatterModel().Summary()
	if !strings.Contains(got, "3 setting(s)") || !strings.Contains(got, "2 store(s)") {
		t.Errorf("Summary() = %q", got)
	}
}

func TestFormatCompact(t *testing.T) {
	got := formatterModel().FormatCompact()

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("FormatCompact() = %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], `Setup 0x10 oneof "Fan Mode"`) {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "min=0 max=10 default=5") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "checkbox") || !strings.Contains(lines[2], "default=Enabled") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestFormatDetailed(t *testing.T) {
	got := formatterModel().FormatDetailed()

	if !strings.Contains(got, `=== VarStore "Setup" ===`) {
		t.Errorf("missing store header in %q", got)
	}
	// The default option carries the marker, the other does not.
	if !strings.Contains(got, "* Manual = 0x1") {
		t.Errorf("missing default marker in %q", got)
	}
	if strings.Contains(got, "* Auto") {
		t.Errorf("non-default option marked in %q", got)
	}
}
