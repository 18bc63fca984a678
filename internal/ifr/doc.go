// Package ifr parses IFRExtractor verbose reports into a settings model.
//
// IFRExtractor dumps a firmware image's internal form representation (IFR)
// as a loosely structured text report. This package reconstructs the
// hierarchical model of configurable settings that report describes:
// variable store name, byte offset within the store, and a typed setting
// (one-of, numeric or checkbox) with its declared default.
//
// # Pipeline
//
// Parsing is a three-stage, single-pass pipeline:
//
//  1. Reassemble groups physical lines into logical records. A record
//     starts at a "0x<hex>:" line; other lines are continuations of the
//     previous record (wrapped prompt and help strings).
//  2. Classifier matches each record against six fixed patterns, in
//     precedence order, producing a typed Record.
//  3. buildModel folds the record sequence into a Model, correlating each
//     question with its variable store declaration and with the default
//     information scattered across option markers and trailing
//     default-value records.
//
// # Default reconciliation
//
// The report expresses defaults two ways: an option record may carry an
// explicit ", Default" marker, or a bare "Default DefaultId: 0x0 Value: N"
// record may trail the question. The reducer unifies both: explicit
// markers apply immediately; bare values are matched against option raw
// values (normalized to uppercase 0x-prefixed hex) or assigned directly
// for numeric questions. Which open question a bare value belongs to is
// decided by the kind of the most recently classified question record.
//
// # Failure semantics
//
// Only two conditions abort a parse: a missing extraction-mode marker on
// the first line (invalid format) and the absence of brace-enclosed tokens
// anywhere in the file (non-verbose extraction). Everything else is
// absorbed: orphan option and default records are dropped, and questions
// whose store id was never declared are filed under a placeholder store
// name.
//
// # Usage
//
//	model, err := ifr.ParseFile("report.txt")
//	if err != nil {
//	    if ifr.IsNotVerboseExtraction(err) {
//	        // ask the user to re-run IFRExtractor with "verbose"
//	    }
//	    return err
//	}
//	model.Each(func(store, offset string, s ifr.Setting) {
//	    // ...
//	})
//
// A Model is immutable once Parse returns; opening another report builds a
// fresh Model rather than mutating the old one, so a previously returned
// Model stays safe to read concurrently.
package ifr
