package ifr

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestModelPutGet(t *testing.T) {
	m := NewModel()
	m.Put("Setup", "0x10", &CheckBox{Name: "A", Default: Enabled})
	m.Put("PchSetup", "0x20", &CheckBox{Name: "B", Default: Disabled})
	m.Put("Setup", "0x30", &CheckBox{Name: "C", Default: Enabled})

	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}

	s, ok := m.Get("Setup", "0x10")
	if !ok || s.SettingName() != "A" {
		t.Errorf("Get(Setup, 0x10) = %v, %v", s, ok)
	}
	if _, ok := m.Get("Setup", "0x99"); ok {
		t.Error("Get() of unknown offset reported ok")
	}
	if _, ok := m.Get("NoStore", "0x10"); ok {
		t.Error("Get() of unknown store reported ok")
	}

	if got := m.Stores(); !reflect.DeepEqual(got, []string{"Setup", "PchSetup"}) {
		t.Errorf("Stores() = %v, want encounter order", got)
	}
	if got := m.Offsets("Setup"); !reflect.DeepEqual(got, []string{"0x10", "0x30"}) {
		t.Errorf("Offsets(Setup) = %v, want encounter order", got)
	}
}

func TestModelOverwriteKeepsPosition(t *testing.T) {
	m := NewModel()
	m.Put("Setup", "0x10", &CheckBox{Name: "old", Default: Enabled})
	m.Put("Setup", "0x20", &CheckBox{Name: "other", Default: Enabled})
	m.Put("Setup", "0x10", &CheckBox{Name: "new", Default: Disabled})

	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after overwrite", m.Len())
	}
	s, _ := m.Get("Setup", "0x10")
	if s.SettingName() != "new" {
		t.Errorf("Get() = %q, want the replacement", s.SettingName())
	}
	if got := m.Offsets("Setup"); !reflect.DeepEqual(got, []string{"0x10", "0x20"}) {
		t.Errorf("Offsets() = %v, overwrite moved the entry", got)
	}
}

func TestModelFirst(t *testing.T) {
	m := NewModel()
	if _, _, _, ok := m.First(); ok {
		t.Error("First() on empty model reported ok")
	}

	m.Put("Setup", "0x10", &CheckBox{Name: "A", Default: Enabled})
	m.Put("Setup", "0x20", &CheckBox{Name: "B", Default: Enabled})

	store, offset, s, ok := m.First()
	if !ok || store != "Setup" || offset != "0x10" || s.SettingName() != "A" {
		t.Errorf("First() = %s/%s/%v, want Setup/0x10/A", store, offset, s)
	}
}

func TestModelMarshalJSON(t *testing.T) {
	m := NewModel()
	m.Put("Setup", "0x10", &OneOf{
		Name:       "Fan Mode",
		Size:       "0x1",
		Options:    []Option{{Label: "Auto", Value: "0x0"}},
		Default:    "Auto",
		DefaultSet: true,
	})
	m.Put("Setup", "0x30", &Numeric{Name: "Boot Delay", Size: "0x1", Min: 0, Max: 10})

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got := string(data)
	for _, want := range []string{
		`"store":"Setup"`,
		`"type":"oneof"`,
		`"default":"Auto"`,
		`"label":"Auto"`,
		`"value":"0x0"`,
		`"type":"numeric"`,
		`"min":0`,
		`"max":10`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON = %s, missing %s", got, want)
		}
	}

	// The numeric declared no default, so none may appear for it.
	if strings.Count(got, `"default"`) != 1 {
		t.Errorf("JSON = %s, want exactly one default field", got)
	}
}
