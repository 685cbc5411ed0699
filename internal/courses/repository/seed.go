package repository

import (
	"time"

	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
)

func strptr(s string) *string { return &s }

func intptr(i int) *int { return &i }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedCourses is the compiled-in catalog used when no database is configured.
func SeedCourses() []domain.Course {
	return []domain.Course{
		{
			Code:       "SE 464",
			Name:       "Software Engineering",
			Professor:  "Patrick Lam",
			RoomNumber: strptr("PG B138"),
			Announcements: []domain.Announcement{
				{
					Title:   "Midterm moved",
					Content: "The midterm has been moved to the week after reading week.",
					Date:    day(2026, time.September, 14),
				},
				{
					Title:   "Project groups",
					Content: "Project groups of up to four must be registered by Friday.",
					Date:    day(2026, time.September, 21),
				},
			},
			Assignments: []domain.Assignment{
				{
					Name:        "Essay",
					DueDate:     day(2026, time.October, 2),
					Description: "A short essay on a software failure of your choice.",
					Grade:       intptr(85),
				},
				{
					Name:        "Quiz",
					DueDate:     day(2026, time.October, 9),
					Description: "Weekly quiz covering design patterns.",
				},
			},
		},
		{
			Code:       "CS 466",
			Name:       "Algorithms",
			Professor:  "Jeffrey Shallit",
			RoomNumber: strptr("MC 2065"),
			Announcements: []domain.Announcement{
				{
					Title:   "Office hours",
					Content: "Office hours move to Tuesdays at 2pm starting next week.",
					Date:    day(2026, time.September, 10),
				},
			},
			Assignments: []domain.Assignment{
				{
					Name:        "Problem Set 1",
					DueDate:     day(2026, time.September, 28),
					Description: "Amortized analysis and splay trees.",
				},
			},
		},
		{
			Code:      "CS 488",
			Name:      "Computer Graphics",
			Professor: "Craig Kaplan",
			Assignments: []domain.Assignment{
				{
					Name:        "Ray Tracer",
					DueDate:     day(2026, time.November, 20),
					Description: "Implement a recursive ray tracer with shadows and reflection.",
				},
			},
		},
		{
			Code:      "CS 456",
			Name:      "Computer Networks",
			Professor: "Ashvin Goel",
			Announcements: []domain.Announcement{
				{
					Title:   "Lab access",
					Content: "Card access to the networks lab is now enabled for all enrolled students.",
					Date:    day(2026, time.September, 8),
				},
			},
		},
	}
}
