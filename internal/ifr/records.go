package ifr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Record is one classified logical record of an IFRExtractor verbose
// report. Concrete types are VarStoreRecord, OneOfRecord,
// OneOfOptionRecord, NumericRecord, CheckBoxRecord and DefaultRecord.
type Record interface {
	// String returns a short human-readable description.
	String() string
}

// VarStoreRecord declares a named backing store for firmware variables.
// It only feeds the id-to-name lookup table; it never enters the model.
type VarStoreRecord struct {
	ID   string // Store id as it appears in the dump, hex digits without 0x
	Size int64  // Declared store size in bytes
	Name string
}

func (r *VarStoreRecord) String() string {
	return fmt.Sprintf("VarStore{id=0x%s, name=%q}", r.ID, r.Name)
}

// OneOfRecord opens an enumerated question. Options and a possible trailing
// default record follow in subsequent records.
type OneOfRecord struct {
	Prompt     string
	Help       string
	QuestionID int64
	VarStoreID string // Hex digits without 0x, key into the store lookup
	VarOffset  string // Hex digits without 0x, formatting preserved from the dump
	SizeBits   int64
}

func (r *OneOfRecord) String() string {
	return fmt.Sprintf("OneOf{prompt=%q, store=0x%s, offset=0x%s, bits=%d}",
		r.Prompt, r.VarStoreID, r.VarOffset, r.SizeBits)
}

// OneOfOptionRecord is one selectable option of the most recently opened
// one-of question.
type OneOfOptionRecord struct {
	Label string
	Value int64
	// IsDefault is set when the record carries an explicit default marker.
	IsDefault bool
}

func (r *OneOfOptionRecord) String() string {
	return fmt.Sprintf("OneOfOption{label=%q, value=%d, default=%v}", r.Label, r.Value, r.IsDefault)
}

// NumericRecord opens a bounded-integer question.
type NumericRecord struct {
	Prompt     string
	Help       string
	QuestionID int64
	VarStoreID string
	VarOffset  string
	SizeBits   int64
	Min        int64
	Max        int64
	Step       int64
}

func (r *NumericRecord) String() string {
	return fmt.Sprintf("Numeric{prompt=%q, store=0x%s, offset=0x%s, min=%d, max=%d}",
		r.Prompt, r.VarStoreID, r.VarOffset, r.Min, r.Max)
}

// CheckBoxRecord declares a complete binary question; its default is
// embedded in the record itself so no correlation step is needed.
type CheckBoxRecord struct {
	Prompt     string
	Help       string
	QuestionID int64
	VarStoreID string
	VarOffset  string
	Default    CheckState
}

func (r *CheckBoxRecord) String() string {
	return fmt.Sprintf("CheckBox{prompt=%q, store=0x%s, offset=0x%s, default=%s}",
		r.Prompt, r.VarStoreID, r.VarOffset, r.Default)
}

// DefaultRecord is a bare default value trailing a question record. Which
// question it belongs to depends on reducer state, not on the record.
type DefaultRecord struct {
	Value int64
}

func (r *DefaultRecord) String() string {
	return fmt.Sprintf("Default{value=%d}", r.Value)
}

// Classifier matches logical records against the fixed set of record
// patterns. It holds compiled regular expressions for the six record kinds
// the builder understands.
type Classifier struct {
	varStorePattern *regexp.Regexp
	oneOfPattern    *regexp.Regexp
	optionPattern   *regexp.Regexp
	numericPattern  *regexp.Regexp
	checkBoxPattern *regexp.Regexp
	defaultPattern  *regexp.Regexp
}

// NewClassifier creates a classifier with compiled record patterns.
func NewClassifier() *Classifier {
	return &Classifier{
		varStorePattern: regexp.MustCompile(`VarStoreId: 0x([0-9A-Fa-f]+), Size: 0x([0-9A-Fa-f]+), Name: "(.*?)"`),
		oneOfPattern:    regexp.MustCompile(`OneOf Prompt:.*?"(.+?)", Help: "(.*?)", QuestionFlags: 0x([0-9A-Fa-f]+), QuestionId: 0x([0-9A-Fa-f]+), VarStoreId: 0x([0-9A-Fa-f]+), VarOffset: 0x([0-9A-Fa-f]+), Flags: 0x([0-9A-Fa-f]+), Size: ([0-9A-Fa-f]+)`),
		optionPattern:   regexp.MustCompile(`OneOfOption Option: "(.*?)" Value: (\d+)(, Default)?`),
		numericPattern:  regexp.MustCompile(`Numeric Prompt: "(.+?)", Help: "(.*?)", QuestionFlags: 0x([0-9A-Fa-f]+), QuestionId: 0x([0-9A-Fa-f]+), VarStoreId: 0x([0-9A-Fa-f]+), VarOffset: 0x([0-9A-Fa-f]+), Flags: 0x([0-9A-Fa-f]+), Size: ([0-9A-Fa-f]+), Min: 0x([0-9A-Fa-f]+), Max: 0x([0-9A-Fa-f]+), Step: 0x([0-9A-Fa-f]+)`),
		checkBoxPattern: regexp.MustCompile(`CheckBox Prompt: "(.+?)", Help: "(.*?)", QuestionFlags: 0x([0-9A-Fa-f]+), QuestionId: 0x([0-9A-Fa-f]+), VarStoreId: 0x([0-9A-Fa-f]+), VarOffset: 0x([0-9A-Fa-f]+), Flags: 0x([0-9A-Fa-f]+), Default: (Enabled|Disabled)`),
		defaultPattern:  regexp.MustCompile(`Default DefaultId: 0x0 Value: (\d+)`),
	}
}

// Classify attempts each record pattern in fixed precedence order
// (variable store > one-of > option > numeric > checkbox > default value)
// and returns the first match, or nil when no pattern matches. At most one
// pattern should match any record the extractor emits; the precedence
// order decides if one ever overlaps.
func (c *Classifier) Classify(record string) Record {
	if m := c.varStorePattern.FindStringSubmatch(record); m != nil {
		return &VarStoreRecord{
			ID:   m[1],
			Size: parseHex(m[2]),
			Name: m[3],
		}
	}
	if m := c.oneOfPattern.FindStringSubmatch(record); m != nil {
		return &OneOfRecord{
			Prompt:     strings.TrimSpace(m[1]),
			Help:       m[2],
			QuestionID: parseHex(m[4]),
			VarStoreID: m[5],
			VarOffset:  m[6],
			SizeBits:   parseInt(m[8]),
		}
	}
	if m := c.optionPattern.FindStringSubmatch(record); m != nil {
		return &OneOfOptionRecord{
			Label:     strings.TrimSpace(m[1]),
			Value:     parseInt(m[2]),
			IsDefault: m[3] != "",
		}
	}
	if m := c.numericPattern.FindStringSubmatch(record); m != nil {
		return &NumericRecord{
			Prompt:     strings.TrimSpace(m[1]),
			Help:       m[2],
			QuestionID: parseHex(m[4]),
			VarStoreID: m[5],
			VarOffset:  m[6],
			SizeBits:   parseInt(m[8]),
			Min:        parseHex(m[9]),
			Max:        parseHex(m[10]),
			Step:       parseHex(m[11]),
		}
	}
	if m := c.checkBoxPattern.FindStringSubmatch(record); m != nil {
		return &CheckBoxRecord{
			Prompt:     strings.TrimSpace(m[1]),
			Help:       m[2],
			QuestionID: parseHex(m[4]),
			VarStoreID: m[5],
			VarOffset:  m[6],
			Default:    CheckState(m[8]),
		}
	}
	if m := c.defaultPattern.FindStringSubmatch(record); m != nil {
		return &DefaultRecord{Value: parseInt(m[1])}
	}
	return nil
}

// parseHex converts a captured hex numeral (no 0x prefix) to an integer.
// The patterns only capture hex digit runs, so a failure here would mean a
// broken pattern, not a malformed report.
func parseHex(s string) int64 {
	v, _ := strconv.ParseInt(s, 16, 64)
	return v
}

// parseInt converts a captured decimal numeral to an integer.
func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
