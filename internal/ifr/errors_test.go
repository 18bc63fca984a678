package ifr

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseErrorPredicates(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantInvalid    bool
		wantNotVerbose bool
	}{
		{
			name:        "invalid format",
			err:         NewInvalidFormatError("missing marker"),
			wantInvalid: true,
		},
		{
			name:           "not verbose",
			err:            NewNotVerboseError("no brace tokens"),
			wantNotVerbose: true,
		},
		{
			name:        "wrapped invalid format",
			err:         fmt.Errorf("reading report: %w", NewInvalidFormatError("missing marker")),
			wantInvalid: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("disk on fire"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidFormat(tt.err); got != tt.wantInvalid {
				t.Errorf("IsInvalidFormat() = %v, want %v", got, tt.wantInvalid)
			}
			if got := IsNotVerboseExtraction(tt.err); got != tt.wantNotVerbose {
				t.Errorf("IsNotVerboseExtraction() = %v, want %v", got, tt.wantNotVerbose)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := NewInvalidFormatError("first line does not contain marker")
	if err.Error() == "" {
		t.Fatal("Error() returned empty string")
	}
	if !IsInvalidFormat(err) {
		t.Error("freshly constructed error failed its own predicate")
	}
}
