package ifr

import "fmt"

// missingStoreName is the placeholder store a question is filed under when
// its VarStoreId has no matching store declaration. Dumps that concatenate
// several form packages can reference a store table defined in an earlier
// package, so this is absorbed instead of failing the parse.
const missingStoreName = "unknown"

// lastKind tracks which question kind the reducer most recently opened. A
// bare default-value record is attributed based on this.
type lastKind int

const (
	lastNone lastKind = iota
	lastOneOf
	lastNumeric
	lastCheckBox
)

// reduceState is the mutable cross-record state of the model builder. It is
// threaded through one fold over the record sequence and discarded.
type reduceState struct {
	// Id-to-name lookup populated by store declaration records.
	stores map[string]string

	// Key of the open one-of question, tracked separately from the open
	// numeric question so a numeric default record is never attributed to a
	// still-open one-of.
	oneOfName   string
	oneOfStore  string
	oneOfOffset string

	numericStore  string
	numericOffset string

	last lastKind

	// optionSeen reports whether an option record was already consumed
	// under the open one-of question. It decides whether a bare default
	// record scans the collected options or becomes a pending target for
	// the next option.
	optionSeen bool

	// pendingHex is the normalized raw value of a bare default record that
	// arrived before any option of the open question. The next option whose
	// value equals it becomes the default.
	pendingHex string

	// pendingFor is the question name pendingHex was stashed for. The
	// pending value is only honored while the open question still carries
	// this name.
	pendingFor string
}

// resolveStore maps a captured VarStoreId to its declared name, or to the
// missing-store placeholder when the id was never declared.
func (st *reduceState) resolveStore(id string) string {
	if name, ok := st.stores[id]; ok {
		return name
	}
	return missingStoreName
}

// normalizeHex formats a raw default value the same way option values are
// stored: uppercase hex, 0x prefix, no padding. Default-to-option
// correlation compares these strings, so both sides must use this exact
// form.
func normalizeHex(v int64) string {
	return fmt.Sprintf("0x%X", v)
}

// sizeBytesHex converts a question's declared size in bits to the byte
// count carried into the compiled script, hex formatted.
func sizeBytesHex(bits int64) string {
	return fmt.Sprintf("%#x", bits/8)
}

// buildModel folds the classified record sequence into a settings model.
// Option and default records with no correlating open question are silently
// dropped; the model is best-effort by construction.
func buildModel(records []string, c *Classifier) *Model {
	m := NewModel()
	st := &reduceState{stores: make(map[string]string)}

	for _, record := range records {
		switch r := c.Classify(record).(type) {
		case *VarStoreRecord:
			st.stores[r.ID] = r.Name

		case *OneOfRecord:
			st.optionSeen = false
			st.oneOfName = r.Prompt
			st.oneOfStore = st.resolveStore(r.VarStoreID)
			st.oneOfOffset = "0x" + r.VarOffset
			m.Put(st.oneOfStore, st.oneOfOffset, &OneOf{
				Name: r.Prompt,
				Size: sizeBytesHex(r.SizeBits),
			})
			st.last = lastOneOf

		case *OneOfOptionRecord:
			if st.last != lastOneOf {
				continue
			}
			s, ok := m.Get(st.oneOfStore, st.oneOfOffset)
			if !ok {
				continue
			}
			entry, ok := s.(*OneOf)
			if !ok {
				continue
			}
			value := normalizeHex(r.Value)
			pendingMatches := st.pendingFor == st.oneOfName && st.pendingHex == value
			if (pendingMatches || r.IsDefault) && !entry.DefaultSet {
				entry.Default = r.Label
				entry.DefaultSet = true
			}
			entry.Options = append(entry.Options, Option{Label: r.Label, Value: value})
			st.optionSeen = true

		case *NumericRecord:
			st.numericStore = st.resolveStore(r.VarStoreID)
			st.numericOffset = "0x" + r.VarOffset
			m.Put(st.numericStore, st.numericOffset, &Numeric{
				Name: r.Prompt,
				Size: sizeBytesHex(r.SizeBits),
				Min:  r.Min,
				Max:  r.Max,
			})
			st.last = lastNumeric

		case *CheckBoxRecord:
			m.Put(st.resolveStore(r.VarStoreID), "0x"+r.VarOffset, &CheckBox{
				Name:    r.Prompt,
				Default: r.Default,
			})
			st.last = lastCheckBox

		case *DefaultRecord:
			switch st.last {
			case lastOneOf:
				value := normalizeHex(r.Value)
				if st.optionSeen {
					// Options are already collected: the first one whose
					// raw value equals the default wins.
					st.pendingHex = value
					if s, ok := m.Get(st.oneOfStore, st.oneOfOffset); ok {
						if entry, ok := s.(*OneOf); ok {
							for _, opt := range entry.Options {
								if opt.Value == value {
									entry.Default = opt.Label
									entry.DefaultSet = true
									break
								}
							}
						}
					}
				} else {
					// No option yet: stash the value and let the matching
					// option claim it when it arrives.
					st.pendingHex = value
					st.pendingFor = st.oneOfName
				}
			case lastNumeric:
				st.pendingHex = ""
				if s, ok := m.Get(st.numericStore, st.numericOffset); ok {
					if entry, ok := s.(*Numeric); ok {
						entry.Default = r.Value
						entry.DefaultSet = true
					}
				}
			}
			// A default after a checkbox carries no information: checkbox
			// defaults are embedded in the question record.
		}
	}

	return m
}
