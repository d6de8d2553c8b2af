package domain

import (
	"regexp"
	"time"
)

// DefaultSection is the lecture section a course is created under when the
// course command gives no explicit section.
const DefaultSection = "001"

// courseIDPattern: 2-4 letters followed by exactly 3 digits, e.g. CS417.
var courseIDPattern = regexp.MustCompile(`^[A-Za-z]{2,4}[0-9]{3}$`)

// ValidCourseID reports whether the ID matches the catalog format.
func ValidCourseID(id string) bool {
	return courseIDPattern.MatchString(id)
}

type Course struct {
	ID        int64     `json:"id"`
	CourseID  string    `json:"courseId"`
	Section   string    `json:"section"`
	Name      string    `json:"name"`
	Schedule  string    `json:"schedule"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`

	// Instructor and TAs hold usernames; the store nulls them out when the
	// referenced account is deleted.
	Instructor  *string      `json:"instructor"`
	TAs         []string     `json:"tas"`
	LabSections []LabSection `json:"labSections"`
}

// Key is the course's display key, e.g. "CS417-001".
func (c *Course) Key() string {
	return c.CourseID + "-" + c.Section
}

type LabSection struct {
	ID        int64   `json:"id"`
	SectionID string  `json:"sectionId"`
	CourseID  string  `json:"courseId"`
	Section   string  `json:"section"`
	TA        *string `json:"ta"`
}
