package http

import "github.com/deltahacks/coursehub-backend/internal/courses/domain"

// courseSummary is the JSON list-view shape; announcements and assignments
// are only returned on the detail endpoint.
type courseSummary struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Professor string  `json:"professor"`
	Room      *string `json:"room_number,omitempty"`
	Online    bool    `json:"online"`
}

func toSummary(c domain.Course) courseSummary {
	return courseSummary{
		Code:      c.Code,
		Name:      c.Name,
		Professor: c.Professor,
		Room:      c.RoomNumber,
		Online:    c.Online(),
	}
}
