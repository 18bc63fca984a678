package ifr

import (
	"encoding/json"
	"fmt"
)

// CheckState is the declared state of a checkbox setting.
type CheckState string

const (
	Enabled  CheckState = "Enabled"
	Disabled CheckState = "Disabled"
)

// Setting is one configurable firmware setting, keyed in the model by its
// variable store name and byte offset. Concrete types are OneOf, Numeric
// and CheckBox.
type Setting interface {
	// SettingName returns the prompt text of the setting.
	SettingName() string

	// String returns a short human-readable description.
	String() string
}

// Option is a single selectable choice of a OneOf setting.
type Option struct {
	Label string `json:"label"` // Prompt text of the option
	Value string `json:"value"` // Raw stored value, uppercase hex with 0x prefix (e.g. "0x1")
}

// OneOf is a setting with a fixed enumerated set of selectable options.
type OneOf struct {
	Name    string   // Prompt text of the question
	Size    string   // Value size in bytes, hex formatted (e.g. "0x1")
	Options []Option // Options in encounter order
	Default string   // Label of the default option
	// DefaultSet reports whether a default was ever declared. Once set it
	// is only reassigned, never cleared.
	DefaultSet bool
}

// SettingName implements Setting.
func (o *OneOf) SettingName() string { return o.Name }

// Option returns the raw value mapped to the given option label.
func (o *OneOf) Option(label string) (string, bool) {
	for _, opt := range o.Options {
		if opt.Label == label {
			return opt.Value, true
		}
	}
	return "", false
}

func (o *OneOf) String() string {
	return fmt.Sprintf("OneOf{name=%q, size=%s, options=%d, default=%q}",
		o.Name, o.Size, len(o.Options), o.Default)
}

// Numeric is a setting whose value is a bounded integer.
type Numeric struct {
	Name       string // Prompt text of the question
	Size       string // Value size in bytes, hex formatted
	Min        int64
	Max        int64
	Default    int64
	DefaultSet bool
}

// SettingName implements Setting.
func (n *Numeric) SettingName() string { return n.Name }

func (n *Numeric) String() string {
	return fmt.Sprintf("Numeric{name=%q, size=%s, min=%d, max=%d, default=%d}",
		n.Name, n.Size, n.Min, n.Max, n.Default)
}

// CheckBox is a binary Enabled/Disabled setting. Its default is embedded in
// the question record itself, so unlike the other variants it is always set.
type CheckBox struct {
	Name    string // Prompt text of the question
	Default CheckState
}

// SettingName implements Setting.
func (c *CheckBox) SettingName() string { return c.Name }

func (c *CheckBox) String() string {
	return fmt.Sprintf("CheckBox{name=%q, default=%s}", c.Name, c.Default)
}

// Model is the settings model produced by one parse pass: a mapping from
// variable store name to byte offset to Setting, preserving encounter order
// at both levels. A model is built once per report and never mutated after
// the parse completes; open a new report, build a new model.
type Model struct {
	storeOrder []string
	stores     map[string]*storeSettings
}

type storeSettings struct {
	offsetOrder []string
	settings    map[string]Setting
}

// NewModel creates an empty settings model.
func NewModel() *Model {
	return &Model{stores: make(map[string]*storeSettings)}
}

// Put inserts a setting at (store, offset). A later setting at the same key
// replaces the earlier one but keeps its original position, so iteration
// order stays deterministic across overwrites.
func (m *Model) Put(store, offset string, s Setting) {
	entry, ok := m.stores[store]
	if !ok {
		entry = &storeSettings{settings: make(map[string]Setting)}
		m.stores[store] = entry
		m.storeOrder = append(m.storeOrder, store)
	}
	if _, exists := entry.settings[offset]; !exists {
		entry.offsetOrder = append(entry.offsetOrder, offset)
	}
	entry.settings[offset] = s
}

// Get returns the setting at (store, offset).
func (m *Model) Get(store, offset string) (Setting, bool) {
	entry, ok := m.stores[store]
	if !ok {
		return nil, false
	}
	s, ok := entry.settings[offset]
	return s, ok
}

// Stores returns the variable store names in encounter order.
func (m *Model) Stores() []string {
	return m.storeOrder
}

// Offsets returns the offsets declared under the given store, in encounter
// order.
func (m *Model) Offsets(store string) []string {
	entry, ok := m.stores[store]
	if !ok {
		return nil
	}
	return entry.offsetOrder
}

// Len returns the total number of settings in the model.
func (m *Model) Len() int {
	n := 0
	for _, entry := range m.stores {
		n += len(entry.settings)
	}
	return n
}

// Each calls fn for every setting in deterministic model order: stores in
// encounter order, then offsets in encounter order within each store.
func (m *Model) Each(fn func(store, offset string, s Setting)) {
	for _, store := range m.storeOrder {
		entry := m.stores[store]
		for _, offset := range entry.offsetOrder {
			fn(store, offset, entry.settings[offset])
		}
	}
}

// First returns the first setting in model order. Used as the default
// anchor for the trailing read-and-reboot directive.
func (m *Model) First() (store, offset string, s Setting, ok bool) {
	for _, st := range m.storeOrder {
		entry := m.stores[st]
		for _, off := range entry.offsetOrder {
			return st, off, entry.settings[off], true
		}
	}
	return "", "", nil, false
}

// JSON serialization uses arrays rather than objects so that the model's
// iteration order survives a round trip through tools like jq.

type storeJSON struct {
	Store    string        `json:"store"`
	Settings []settingJSON `json:"settings"`
}

type settingJSON struct {
	Offset  string   `json:"offset"`
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Size    string   `json:"size,omitempty"`
	Options []Option `json:"options,omitempty"`
	Min     *int64   `json:"min,omitempty"`
	Max     *int64   `json:"max,omitempty"`
	Default any      `json:"default,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (m *Model) MarshalJSON() ([]byte, error) {
	out := make([]storeJSON, 0, len(m.storeOrder))
	for _, store := range m.storeOrder {
		entry := m.stores[store]
		sj := storeJSON{Store: store, Settings: make([]settingJSON, 0, len(entry.offsetOrder))}
		for _, offset := range entry.offsetOrder {
			rec := settingJSON{Offset: offset}
			switch s := entry.settings[offset].(type) {
			case *OneOf:
				rec.Type = "oneof"
				rec.Name = s.Name
				rec.Size = s.Size
				rec.Options = s.Options
				if s.DefaultSet {
					rec.Default = s.Default
				}
			case *Numeric:
				rec.Type = "numeric"
				rec.Name = s.Name
				rec.Size = s.Size
				min, max := s.Min, s.Max
				rec.Min, rec.Max = &min, &max
				if s.DefaultSet {
					rec.Default = s.Default
				}
			case *CheckBox:
				rec.Type = "checkbox"
				rec.Name = s.Name
				rec.Default = string(s.Default)
			}
			sj.Settings = append(sj.Settings, rec)
		}
		out = append(out, sj)
	}
	return json.Marshal(out)
}
