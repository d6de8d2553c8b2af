package command

import (
	"errors"
	"strings"

	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/repository"
)

const (
	courseAssignmentsUsage = "course_assignments must have exactly 2 arguments. Correct usage: course_assignments <course_id> <section>"
	taAssignmentsUsage     = "ta_assignments must have exactly 0 arguments. Correct usage: ta_assignments"
)

func (in *Interpreter) courseAssignments(sess *Session, line parsedLine) string {
	if len(line.Args) != 2 {
		return courseAssignmentsUsage
	}
	courseID, section := line.Args[0], line.Args[1]

	course, err := in.store.GetCourse(courseID, section)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Course with ID " + courseID + "-" + section + " does not exist."
		}
		return in.internalError("course_assignments", err)
	}

	return in.courseBlock(course)
}

func (in *Interpreter) taAssignments(sess *Session, line parsedLine) string {
	if len(line.Args) != 0 {
		return taAssignmentsUsage
	}

	courses, err := in.store.ListCourses()
	if err != nil {
		return in.internalError("ta_assignments", err)
	}

	blocks := make([]string, 0, len(courses))
	for _, course := range courses {
		blocks = append(blocks, in.courseBlock(course))
	}

	return strings.Join(blocks, "\n")
}

// courseBlock renders one course's staffing: header, instructor line, then one
// line per TA. Course-level TAs come first in store order, each suffixed with
// its lab section when it holds one; TAs known only through a lab section
// follow.
func (in *Interpreter) courseBlock(course *domain.Course) string {
	var b strings.Builder

	b.WriteString(course.Key())
	b.WriteString(":\n")

	instructor := ""
	if course.Instructor != nil {
		instructor = in.displayName(*course.Instructor)
	}
	b.WriteString("Instructor: ")
	b.WriteString(instructor)
	b.WriteString("\n\nTAs:\n")

	listed := make(map[string]bool, len(course.TAs))
	for _, username := range course.TAs {
		listed[username] = true

		b.WriteString(in.displayName(username))
		for _, lab := range course.LabSections {
			if lab.TA != nil && *lab.TA == username {
				b.WriteString(" - ")
				b.WriteString(lab.SectionID)
				break
			}
		}
		b.WriteString("\n")
	}

	for _, lab := range course.LabSections {
		if lab.TA == nil || listed[*lab.TA] {
			continue
		}
		listed[*lab.TA] = true

		b.WriteString(in.displayName(*lab.TA))
		b.WriteString(" - ")
		b.WriteString(lab.SectionID)
		b.WriteString("\n")
	}

	return b.String()
}
