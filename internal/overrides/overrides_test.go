package overrides

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/setupvar/builder/internal/ifr"
	"github.com/setupvar/builder/internal/script"
)

func testModel() *ifr.Model {
	m := ifr.NewModel()
	m.Put("CpuSetup", "0x143", &ifr.OneOf{
		Name: "Fan Mode",
		Size: "0x1",
		Options: []ifr.Option{
			{Label: "Auto", Value: "0x0"},
			{Label: "Performance", Value: "0x2"},
		},
		Default:    "Auto",
		DefaultSet: true,
	})
	m.Put("CpuSetup", "0x150", &ifr.Numeric{
		Name: "Boot Delay", Size: "0x1", Min: 0, Max: 10, Default: 5, DefaultSet: true,
	})
	m.Put("PchSetup", "0x20", &ifr.CheckBox{Name: "Wake On LAN", Default: ifr.Enabled})
	return m
}

const sampleOverrides = `selections:
  - store: CpuSetup
    offset: "0x143"
    option: Performance
  - store: CpuSetup
    offset: "0x150"
    value: 7
  - store: PchSetup
    offset: "0x20"
    enabled: false
reboot: true
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleOverrides))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(f.Selections) != 3 {
		t.Errorf("selections = %d, want 3", len(f.Selections))
	}
	if !f.Reboot {
		t.Error("Reboot = false, want true")
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("selections:\n  - store: X\n    offset: \"0x1\"\n    vale: 3\n"))
	if err == nil {
		t.Error("Parse() error = nil, want error for misspelled field")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changes.yaml")
	if err := os.WriteFile(path, []byte(sampleOverrides), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Selections) != 3 {
		t.Errorf("selections = %d, want 3", len(f.Selections))
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}

func TestApply(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleOverrides))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	m := testModel()
	sel, err := f.Apply(m)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if sel.Len() != 3 {
		t.Errorf("selection size = %d, want 3", sel.Len())
	}

	// The compiled script proves the selections landed on the right
	// settings with the right variants.
	s := script.Compile(m, sel, script.Options{})
	if len(s.Directives) != 3 {
		t.Fatalf("directives = %d, want 3", len(s.Directives))
	}
	if s.Directives[0].Command != "setup_var.efi 0x143 0x2 -s 0x1 -n CpuSetup" {
		t.Errorf("command = %q", s.Directives[0].Command)
	}
}

func TestApplyErrors(t *testing.T) {
	strptr := func(s string) *string { return &s }
	intptr := func(v int64) *int64 { return &v }

	tests := []struct {
		name    string
		entry   Entry
		wantErr string
	}{
		{
			name:    "unknown setting",
			entry:   Entry{Store: "CpuSetup", Offset: "0x999", Option: strptr("Auto")},
			wantErr: "no setting at",
		},
		{
			name:    "missing store",
			entry:   Entry{Offset: "0x143", Option: strptr("Auto")},
			wantErr: "store and offset are required",
		},
		{
			name:    "no value field",
			entry:   Entry{Store: "CpuSetup", Offset: "0x143"},
			wantErr: "exactly one of",
		},
		{
			name:    "two value fields",
			entry:   Entry{Store: "CpuSetup", Offset: "0x143", Option: strptr("Auto"), Value: intptr(1)},
			wantErr: "exactly one of",
		},
		{
			name:    "wrong variant for one-of",
			entry:   Entry{Store: "CpuSetup", Offset: "0x143", Value: intptr(2)},
			wantErr: "is a one-of",
		},
		{
			name:    "unknown option label",
			entry:   Entry{Store: "CpuSetup", Offset: "0x143", Option: strptr("Turbo")},
			wantErr: "has no option",
		},
		{
			name:    "numeric out of range",
			entry:   Entry{Store: "CpuSetup", Offset: "0x150", Value: intptr(11)},
			wantErr: "out of range",
		},
		{
			name:    "wrong variant for checkbox",
			entry:   Entry{Store: "PchSetup", Offset: "0x20", Option: strptr("On")},
			wantErr: "is a checkbox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Selections: []Entry{tt.entry}}
			_, err := f.Apply(testModel())
			if err == nil {
				t.Fatal("Apply() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Apply() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
