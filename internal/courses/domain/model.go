package domain

import "time"

// Course is a single course record. The catalog is loaded once at boot and
// never mutated afterwards.
type Course struct {
	Code          string         `json:"code"`
	Name          string         `json:"name"`
	Professor     string         `json:"professor"`
	RoomNumber    *string        `json:"room_number,omitempty"`
	Announcements []Announcement `json:"announcements"`
	Assignments   []Assignment   `json:"assignments"`
}

type Announcement struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

type Assignment struct {
	Name        string    `json:"name"`
	DueDate     time.Time `json:"due_date"`
	Description string    `json:"description"`
	Grade       *int      `json:"grade,omitempty"`
}

// Online reports whether the course has no assigned room.
func (c *Course) Online() bool {
	return c.RoomNumber == nil || *c.RoomNumber == ""
}

// DaysUntilDue returns the number of whole days from now until the
// assignment's due date. Past-due assignments yield negative values.
func (a *Assignment) DaysUntilDue(now time.Time) int {
	due := time.Date(a.DueDate.Year(), a.DueDate.Month(), a.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today).Hours() / 24)
}
