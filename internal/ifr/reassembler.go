package ifr

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ExtractionMarker must appear on the first line of every report this
// parser accepts. IFRExtractor writes it for UEFI-mode extractions.
const ExtractionMarker = "Extraction mode: UEFI"

var (
	// recordStartPattern recognizes the start of a logical record: a hex
	// address literal followed by a colon at the start of the line.
	recordStartPattern = regexp.MustCompile(`^0x[0-9a-fA-F]+:`)

	// braceTokenPattern detects the brace-enclosed opcode tokens that only
	// verbose extractions contain. Checked once over the whole file.
	braceTokenPattern = regexp.MustCompile(`\{.*\}`)
)

// maxLineSize bounds a single physical line of the report. Help strings
// wrap, so real lines stay short, but concatenated dumps have been seen
// with very long ones.
const maxLineSize = 1024 * 1024

// Reassemble groups the physical lines of an IFRExtractor verbose report
// into logical records. A line matching the record-start pattern opens a
// new record; any other line is a continuation and is appended to the
// current record with a single interposed space, so free-text fields that
// wrap across lines come back together.
//
// The first line must contain ExtractionMarker, otherwise an
// invalid-format ParseError is returned. If no line in the whole file
// contains a brace-enclosed token, a not-verbose ParseError is returned.
// In both cases no records are produced.
func Reassemble(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read report: %w", err)
		}
		return nil, NewInvalidFormatError("empty report")
	}
	if !strings.Contains(scanner.Text(), ExtractionMarker) {
		return nil, NewInvalidFormatError(fmt.Sprintf("first line does not contain %q", ExtractionMarker))
	}

	var (
		records    []string
		current    string
		hasCurrent bool
		verbose    bool
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if !verbose && braceTokenPattern.MatchString(line) {
			verbose = true
		}

		if recordStartPattern.MatchString(line) {
			if hasCurrent {
				records = append(records, current)
			}
			current = line
			hasCurrent = true
		} else if hasCurrent {
			current += " " + line
		}
		// Lines before the first record start are dropped.
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	if hasCurrent {
		records = append(records, current)
	}

	if !verbose {
		return nil, NewNotVerboseError("no brace-enclosed tokens found; re-run IFRExtractor with the verbose option")
	}

	return records, nil
}
