package quote

import (
	"errors"
	"slices"
	"strings"
	"time"
)

var ErrInvalidDraft = errors.New("invalid draft")

// ValidationError lists the required fields missing from a draft.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidDraft }

func (d Draft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.ClientName) == "" {
		missing = append(missing, "client name")
	}
	if strings.TrimSpace(d.ProjectName) == "" {
		missing = append(missing, "project name")
	}
	if len(d.Lines) == 0 {
		missing = append(missing, "line items")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Build turns a draft into a pending quote. The sequence id is allocated
// from history against now.
func Build(d Draft, history []Quote, now time.Time, id string) (Quote, error) {
	if err := d.Validate(); err != nil {
		return Quote{}, err
	}
	lines := slices.Clone(d.Lines)
	oneTime, recurring := Totals(lines)
	return Quote{
		ID:             id,
		SequenceID:     NextSequenceID(history, now),
		CreatedAt:      now,
		ClientName:     d.ClientName,
		ProjectName:    d.ProjectName,
		Notes:          d.Notes,
		Lines:          lines,
		TotalOneTime:   oneTime,
		TotalRecurring: recurring,
		LineCount:      len(lines),
		SyncStatus:     Pending,
	}, nil
}
