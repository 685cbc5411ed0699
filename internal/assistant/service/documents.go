package service

import (
	"fmt"

	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
)

const dateLayout = "January 2, 2006"

// BuildDocuments synthesizes the candidate answer documents for a course:
// identity facts first, then two facts per announcement, then two facts per
// assignment plus a grade fact when one is recorded. The output is
// deterministic and order-preserving; reranking depends on that for test and
// debug reproducibility.
func BuildDocuments(c *domain.Course) []string {
	docs := make([]string, 0, 4+2*len(c.Announcements)+3*len(c.Assignments))

	docs = append(docs,
		fmt.Sprintf("The course name is %s.", c.Name),
		fmt.Sprintf("The course code is %s.", c.Code),
		fmt.Sprintf("The professor is %s.", c.Professor),
	)
	if c.Online() {
		docs = append(docs, "The course is online.")
	} else {
		docs = append(docs, fmt.Sprintf("The room number is %s.", *c.RoomNumber))
	}

	for _, a := range c.Announcements {
		docs = append(docs,
			fmt.Sprintf("The announcement %q was posted on %s.", a.Title, a.Date.Format(dateLayout)),
			fmt.Sprintf("The announcement %q says: %s", a.Title, a.Content),
		)
	}

	for _, a := range c.Assignments {
		docs = append(docs,
			fmt.Sprintf("The assignment %q is due on %s.", a.Name, a.DueDate.Format(dateLayout)),
			fmt.Sprintf("The assignment %q is about: %s", a.Name, a.Description),
		)
		if a.Grade != nil {
			docs = append(docs, fmt.Sprintf("The grade for the assignment %q is %d.", a.Name, *a.Grade))
		}
	}

	return docs
}
