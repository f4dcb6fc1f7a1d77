package habit

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength        = 64
	MaxDescriptionLength = 1024
)

var (
	ErrInvalidDraft       = errors.New("invalid habit")
	ErrEmptyName          = fmt.Errorf("%w: name is required", ErrInvalidDraft)
	ErrNameTooLong        = fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidDraft, MaxNameLength)
	ErrDescriptionTooLong = fmt.Errorf("%w: description must be 0-%d characters", ErrInvalidDraft, MaxDescriptionLength)
	ErrNoActiveDays       = fmt.Errorf("%w: select at least one day", ErrInvalidDraft)
	ErrInvalidWeekday     = fmt.Errorf("%w: weekday out of range", ErrInvalidDraft)
	ErrInvalidColor       = fmt.Errorf("%w: unknown color", ErrInvalidDraft)
)

// Draft is the user input a habit is created from.
type Draft struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Color       string         `json:"color"`
	DaysOfWeek  []time.Weekday `json:"days_of_week"`
}

// DefaultDays is the weekday selection a new draft starts with (Monday to Friday).
var DefaultDays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// Normalized is a validated draft: trimmed text, parsed color, sorted unique weekdays.
type Normalized struct {
	Name        string
	Description string
	Color       Color
	DaysOfWeek  []time.Weekday
}

// Normalize trims and validates d. An empty color selects the first palette entry.
func (d Draft) Normalize() (Normalized, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Normalized{}, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Normalized{}, ErrNameTooLong
	}
	desc := strings.TrimSpace(d.Description)
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return Normalized{}, ErrDescriptionTooLong
	}

	color := Palette[0]
	if strings.TrimSpace(d.Color) != "" {
		c, err := ParseColor(d.Color)
		if err != nil {
			return Normalized{}, err
		}
		color = c
	}

	days, err := NormalizeDays(d.DaysOfWeek)
	if err != nil {
		return Normalized{}, err
	}

	return Normalized{Name: name, Description: desc, Color: color, DaysOfWeek: days}, nil
}

// NormalizeDays validates weekday indexes and returns them sorted without duplicates.
func NormalizeDays(days []time.Weekday) ([]time.Weekday, error) {
	if len(days) == 0 {
		return nil, ErrNoActiveDays
	}
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, d)
		}
		out = append(out, d)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}
