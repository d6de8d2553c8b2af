package command

import (
	"errors"

	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/repository"
)

const (
	courseUsage    = "course must have exactly 2 arguments. Correct usage: course <course_id> <course_name>"
	assignInsUsage = "assign_ins must have 2 or 3 arguments. Correct usage: assign_ins <user_name> <courseid> <section>"
	assignTAUsage  = "assign_ta must have 2 or 3 arguments. Correct usage: assign_ta <user_name> <courseid> -s <section>"
)

type courseArgs struct {
	CourseID string `validate:"required,course_id"`
	Name     string `validate:"required"`
}

func (in *Interpreter) course(sess *Session, line parsedLine) string {
	if len(line.Args) != 2 {
		return courseUsage
	}

	args := courseArgs{CourseID: line.Args[0], Name: line.Args[1]}
	if err := in.validate.Struct(args); err != nil {
		return "Course ID not valid. Please check format."
	}

	course := &domain.Course{
		CourseID: args.CourseID,
		Section:  domain.DefaultSection,
		Name:     args.Name,
	}
	if err := in.store.CreateCourse(course); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "There is already a course with this ID."
		}
		return in.internalError("course", err)
	}

	return args.CourseID + " " + args.Name + " created!"
}

func (in *Interpreter) assignInstructor(sess *Session, line parsedLine) string {
	if len(line.Args) != 2 && len(line.Args) != 3 {
		return assignInsUsage
	}
	username, courseID := line.Args[0], line.Args[1]
	section := domain.DefaultSection
	if len(line.Args) == 3 {
		section = line.Args[2]
	}

	account, err := in.store.GetAccount(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Instructor with user_name " + username + " does not exist."
		}
		return in.internalError("assign_ins", err)
	}

	if _, err := in.store.GetCourse(courseID, section); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Course with ID " + courseID + " does not exist."
		}
		return in.internalError("assign_ins", err)
	}

	if !account.Roles.IsInstructor() {
		return "User " + username + " does not have the instructor role."
	}

	if err := in.store.SetInstructor(courseID, section, username); err != nil {
		return in.internalError("assign_ins", err)
	}

	return username + " assigned to " + courseID
}

func (in *Interpreter) assignTA(sess *Session, line parsedLine) string {
	if len(line.Args) != 2 && len(line.Args) != 3 {
		return assignTAUsage
	}
	labSections, hasLab := line.Flags["-s"]
	if hasLab && len(labSections) != 1 {
		return assignTAUsage
	}

	username, courseID := line.Args[0], line.Args[1]
	section := domain.DefaultSection
	if len(line.Args) == 3 {
		section = line.Args[2]
	}

	account, err := in.store.GetAccount(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "TA with user_name " + username + " does not exist."
		}
		return in.internalError("assign_ta", err)
	}

	if _, err := in.store.GetCourse(courseID, section); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Course with ID " + courseID + "-" + section + " does not exist."
		}
		return in.internalError("assign_ta", err)
	}

	if !account.Roles.IsTA() {
		return "User " + username + " does not have the ta role."
	}

	if !hasLab {
		if err := in.store.AddCourseTA(courseID, section, username); err != nil {
			return in.internalError("assign_ta", err)
		}
		return username + " assigned to " + courseID + "-" + section
	}

	labID := labSections[0]
	if _, err := in.store.GetLabSection(courseID, section, labID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Section " + labID + " is not a valid session for " + courseID + "-" + section + "."
		}
		return in.internalError("assign_ta", err)
	}

	if err := in.store.SetLabSectionTA(courseID, section, labID, username); err != nil {
		return in.internalError("assign_ta", err)
	}

	return "User " + username + " assigned to " + courseID + "-" + section + " lab section " + labID + "."
}
