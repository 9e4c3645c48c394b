package narrative

import (
	"time"

	"github.com/hupe1980/curia/core"
)

// Date is the simulation date an event occurred on. Month is 1-based here
// even though the calendar collaborator exposes a 0-based month index.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// DateFromClock builds an event Date from the simulation calendar,
// converting the calendar's 0-based month index to a 1-based month.
func DateFromClock(clock core.Clock) Date {
	return Date{Year: clock.Year(), Month: clock.MonthIndex() + 1, Day: clock.Day()}
}

// Event is an immutable record of something that happened in the simulated
// world. After construction it must be treated as read-only; the Context it
// is appended to never mutates it.
type Event struct {
	ID           string            `json:"id"`
	Type         string            `json:"event_type"`
	Description  string            `json:"description"`
	Date         Date              `json:"date"`
	Significance int               `json:"significance"` // ordinal, >= 0
	Tags         []string          `json:"tags"`
	Entities     []string          `json:"entities,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewEvent constructs an event with a fresh unique ID and deduplicated tags.
func NewEvent(eventType, description string, date Date) Event {
	return Event{
		ID:          core.NewID(),
		Type:        eventType,
		Description: description,
		Date:        date,
		Metadata:    map[string]string{},
		CreatedAt:   time.Now().UTC(),
	}
}

// HasTag reports whether the event carries the given tag.
func (e Event) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTags appends tags not already present, preserving set semantics over
// the slice representation.
func (e *Event) AddTags(tags ...string) {
	for _, tag := range tags {
		if !e.HasTag(tag) {
			e.Tags = append(e.Tags, tag)
		}
	}
}
