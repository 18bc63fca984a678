package ifr

import (
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name   string
		record string
		verify func(t *testing.T, r Record)
	}{
		{
			name:   "varstore declaration",
			record: `0x1D2A: VarStoreId: 0x1, Size: 0x30C, Name: "Setup" { 24 }`,
			verify: func(t *testing.T, r Record) {
				v, ok := r.(*VarStoreRecord)
				if !ok {
					t.Fatalf("record type = %T, want *VarStoreRecord", r)
				}
				if v.ID != "1" {
					t.Errorf("ID = %q, want %q", v.ID, "1")
				}
				if v.Size != 0x30C {
					t.Errorf("Size = %d, want %d", v.Size, 0x30C)
				}
				if v.Name != "Setup" {
					t.Errorf("Name = %q, want %q", v.Name, "Setup")
				}
			},
		},
		{
			name: "one-of question",
			record: `0x2B0A1: OneOf Prompt: "Fan Mode", Help: "Select fan behavior", QuestionFlags: 0x0, ` +
				`QuestionId: 0x1E, VarStoreId: 0x1, VarOffset: 0x10, Flags: 0x10, Size: 8 { 05 }`,
			verify: func(t *testing.T, r Record) {
				v, ok := r.(*OneOfRecord)
				if !ok {
					t.Fatalf("record type = %T, want *OneOfRecord", r)
				}
				if v.Prompt != "Fan Mode" {
					t.Errorf("Prompt = %q, want %q", v.Prompt, "Fan Mode")
				}
				if v.VarStoreID != "1" {
					t.Errorf("VarStoreID = %q, want %q", v.VarStoreID, "1")
				}
				if v.VarOffset != "10" {
					t.Errorf("VarOffset = %q, want %q", v.VarOffset, "10")
				}
				if v.SizeBits != 8 {
					t.Errorf("SizeBits = %d, want 8", v.SizeBits)
				}
			},
		},
		{
			name:   "option without default marker",
			record: `0x2B0C3: OneOfOption Option: "Auto" Value: 0 { 09 }`,
			verify: func(t *testing.T, r Record) {
				v, ok := r.(*OneOfOptionRecord)
				if !ok {
					t.Fatalf("record type = %T, want *OneOfOptionRecord", r)
				}
				if v.Label != "Auto" || v.Value != 0 || v.IsDefault {
					t.Errorf("got %+v, want Auto/0/not-default", v)
				}
			},
		},
		{
			name:   "option with default marker",
			record: `0x2B0D1: OneOfOption Option: "Manual" Value: 1, Default, MfgDefault { 09 }`,
			verify: func(t *testing.T, r Record) {
				v, ok := r.(*OneOfOptionRecord)
				if !ok {
					t.Fatalf("record type = %T, want *OneOfOptionRecord", r)
				}
				if v.Label != "Manual" || v.Value != 1 || !v.IsDefault {
					t.Errorf("got %+v, want Manual/1/default", v)
				}
			},
		},
		{
			name: "numeric question with hex bounds",
			record: `0x2C001: Numeric Prompt: "Boot Delay", Help: "Seconds", QuestionFlags: 0x0, ` +
				`QuestionId: 0x21, VarStoreId: 0x1, VarOffset: 0x30, Flags: 0x10, Size: 8, Min: 0x0, Max: 0xA, Step: 0x1 { 07 }`,
			verify: func(t *testing.T, r Record) {
				v, ok := r.(*NumericRecord)
				if !ok {
					t.Fatalf("record type = %T, want *NumericRecord", r)
				}
				if v.Min != 0 || v.Max != 10 || v.Step != 1 {
					t.Errorf("bounds = %d..%d step %d, want 0..10 step 1", v.Min, v.Max, v.Step)
				}
				if v.VarOffset != "30" {
					t.Errorf("VarOffset = %q, want %q", v.VarOffset, "30")
				}
			},
		},
		{
			name: "checkbox question",
			record: `0x2D001: CheckBox Prompt: "Hyper Threading", Help: "", QuestionFlags: 0x0, ` +
				`QuestionId: 0x22, VarStoreId: 0x1, VarOffset: 0x20, Flags: 0x0, Default: Enabled { 06 }`,
			verify: func(t *testing.T, r Record) {
				v, ok := r.(*CheckBoxRecord)
				if !ok {
					t.Fatalf("record type = %T, want *CheckBoxRecord", r)
				}
				if v.Prompt != "Hyper Threading" {
					t.Errorf("Prompt = %q, want %q", v.Prompt, "Hyper Threading")
				}
				if v.Default != Enabled {
					t.Errorf("Default = %q, want Enabled", v.Default)
				}
			},
		},
		{
			name:   "bare default value",
			record: `0x2B0F0: Default DefaultId: 0x0 Value: 1 { 5B }`,
			verify: func(t *testing.T, r Record) {
				v, ok := r.(*DefaultRecord)
				if !ok {
					t.Fatalf("record type = %T, want *DefaultRecord", r)
				}
				if v.Value != 1 {
					t.Errorf("Value = %d, want 1", v.Value)
				}
			},
		},
		{
			name:   "unrecognized record",
			record: `0x2E000: Form FormId: 0x1, Title: "Advanced" { 01 }`,
			verify: func(t *testing.T, r Record) {
				if r != nil {
					t.Errorf("record = %v, want nil", r)
				}
			},
		},
		{
			name: "wrapped prompt is trimmed",
			record: `0x2B0A1: OneOf Prompt: "Fan Mode ", Help: "", QuestionFlags: 0x0, ` +
				`QuestionId: 0x1E, VarStoreId: 0x1, VarOffset: 0x10, Flags: 0x10, Size: 8 { 05 }`,
			verify: func(t *testing.T, r Record) {
				v, ok := r.(*OneOfRecord)
				if !ok {
					t.Fatalf("record type = %T, want *OneOfRecord", r)
				}
				if v.Prompt != "Fan Mode" {
					t.Errorf("Prompt = %q, want trimmed %q", v.Prompt, "Fan Mode")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, c.Classify(tt.record))
		})
	}
}

// A record that happens to contain text matching more than one pattern
// resolves to the earlier pattern in the fixed precedence order.
func TestClassifyPrecedence(t *testing.T) {
	c := NewClassifier()

	record := `0x2B0C3: OneOfOption Option: "One" Value: 1 Default DefaultId: 0x0 Value: 1 { 09 }`
	if _, ok := c.Classify(record).(*OneOfOptionRecord); !ok {
		t.Errorf("option text with embedded default text should classify as option, got %T", c.Classify(record))
	}
}
