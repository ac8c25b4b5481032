// Package catalog holds the static, read-only list of bookable events.
package catalog

import "eventTicketing/internal/models"

var sampleEvents = []models.Event{
	{
		ID:           "event-1",
		Title:        "Tech Conference 2025",
		Date:         "Apr 15, 2025",
		Time:         "9:00 AM - 5:00 PM",
		Location:     "San Francisco Convention Center",
		Image:        "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		Description:  "Join the biggest tech conference of the year with speakers from leading tech companies.",
		Attendees:    245,
		MaxAttendees: 300,
		Featured:     true,
	},
	{
		ID:           "event-2",
		Title:        "Design Workshop",
		Date:         "May 22, 2025",
		Time:         "10:00 AM - 3:00 PM",
		Location:     "Design Studio, New York",
		Image:        "https://images.unsplash.com/photo-1515187029135-18ee286d815b?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		Description:  "Learn the latest design principles and tools in this hands-on workshop.",
		Attendees:    32,
		MaxAttendees: 50,
		Featured:     false,
	},
	{
		ID:           "event-3",
		Title:        "Music Festival",
		Date:         "Jun 5, 2025",
		Time:         "4:00 PM - 11:00 PM",
		Location:     "Central Park, New York",
		Image:        "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		Description:  "Enjoy live performances from top artists across multiple genres.",
		Attendees:    890,
		MaxAttendees: 1000,
		Featured:     false,
	},
}

// Catalog serves lookups over a fixed event list.
type Catalog struct {
	events []models.Event
}

// New returns a catalog over the given events, or the sample events when none are passed.
func New(events ...models.Event) *Catalog {
	if len(events) == 0 {
		events = sampleEvents
	}

	c := &Catalog{events: make([]models.Event, len(events))}
	copy(c.events, events)

	return c
}

// SampleEvents returns a copy of the built-in demo events.
func SampleEvents() []models.Event {
	out := make([]models.Event, len(sampleEvents))
	copy(out, sampleEvents)
	return out
}

func (c *Catalog) GetEventByID(id string) (models.Event, bool) {
	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

func (c *Catalog) All() []models.Event {
	out := make([]models.Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *Catalog) Featured() []models.Event {
	var out []models.Event
	for _, e := range c.events {
		if e.Featured {
			out = append(out, e)
		}
	}
	return out
}
