package core

import "fmt"

// Clock is the read-only simulation calendar collaborator. The engine reads
// the current date for narrative events and prompt context but never mutates
// it. MonthIndex is 0-based; narrative event dates carry 1-based months.
type Clock interface {
	Year() int
	MonthIndex() int
	Day() int
	FormattedDate() string
}

// FixedClock is a Clock pinned to a single date. Useful for tests, examples
// and sessions whose caller advances time externally.
type FixedClock struct {
	CurrentYear  int
	CurrentMonth int // 0-based month index
	CurrentDay   int
}

// Year returns the simulation year.
func (c FixedClock) Year() int { return c.CurrentYear }

// MonthIndex returns the 0-based month index.
func (c FixedClock) MonthIndex() int { return c.CurrentMonth }

// Day returns the day of month.
func (c FixedClock) Day() int { return c.CurrentDay }

// FormattedDate renders the date for prompts and logs.
func (c FixedClock) FormattedDate() string {
	return fmt.Sprintf("Year %d, Month %d, Day %d", c.CurrentYear, c.CurrentMonth+1, c.CurrentDay)
}
