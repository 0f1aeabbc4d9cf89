package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// DateRange is a half-open range of calendar days [Start, End). For lodging
// Start is check-in and End is check-out.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange truncates both ends to UTC midnight.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Midnight(start), End: Midnight(end)}
}

// ParseDateRange parses two YYYY-MM-DD dates.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: invalid start date %q", ErrValidation, start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: invalid end date %q", ErrValidation, end)
	}
	return NewDateRange(s, e), nil
}

func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate rejects empty, zero-length and inverted ranges.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	if !r.End.After(r.Start) {
		return fmt.Errorf("%w: end date %s must be after start date %s",
			ErrValidation, r.End.Format(DateLayout), r.Start.Format(DateLayout))
	}
	return nil
}

// Nights is the number of whole days in the range.
func (r DateRange) Nights() int {
	if !r.End.After(r.Start) {
		return 0
	}
	return int(Midnight(r.End).Sub(Midnight(r.Start)) / day)
}

// Dates lists every calendar day in [Start, End).
func (r DateRange) Dates() []time.Time {
	n := r.Nights()
	out := make([]time.Time, 0, n)
	start := Midnight(r.Start)
	for i := 0; i < n; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// Contains reports whether other lies fully inside r.
func (r DateRange) Contains(other DateRange) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}
