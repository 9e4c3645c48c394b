package narrative

import "sort"

// Context is the append-only narrative log for one session plus the derived
// recurring-entity frequency table. It is owned by a single Environment and
// mutated only between model-call suspension points, so it needs no locking.
type Context struct {
	events       []Event
	entityCounts map[string]int
}

// NewContext creates an empty narrative context.
func NewContext() *Context {
	return &Context{entityCounts: make(map[string]int)}
}

// Append adds an event to the log and increments the recurring-entity count
// for every entity the event names. The log only grows within a session.
func (c *Context) Append(ev Event) {
	c.events = append(c.events, ev)
	for _, entity := range ev.Entities {
		c.entityCounts[entity]++
	}
}

// RecentEvents returns up to n events, most recent first. It never
// regenerates past events; the returned slice is a copy safe for callers to
// hold across appends.
func (c *Context) RecentEvents(n int) []Event {
	if n <= 0 || len(c.events) == 0 {
		return nil
	}
	if n > len(c.events) {
		n = len(c.events)
	}
	out := make([]Event, n)
	for i := 0; i < n; i++ {
		out[i] = c.events[len(c.events)-1-i]
	}
	return out
}

// Len returns the number of events logged so far.
func (c *Context) Len() int { return len(c.events) }

// Events returns a copy of the full log in append order. Exposed so
// persistence collaborators can serialize sessions without knowing the
// internal layout.
func (c *Context) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// EntityCount returns how many logged events mention the named entity.
// Unknown names read as 0.
func (c *Context) EntityCount(name string) int {
	return c.entityCounts[name]
}

// RecurringEntities returns entity names mentioned at least minCount times,
// sorted by descending frequency (ties broken by name for determinism).
func (c *Context) RecurringEntities(minCount int) []string {
	if minCount < 1 {
		minCount = 1
	}
	var names []string
	for name, count := range c.entityCounts {
		if count >= minCount {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := c.entityCounts[names[i]], c.entityCounts[names[j]]
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	return names
}

// EntityCounts returns a copy of the full frequency table.
func (c *Context) EntityCounts() map[string]int {
	out := make(map[string]int, len(c.entityCounts))
	for k, v := range c.entityCounts {
		out[k] = v
	}
	return out
}
