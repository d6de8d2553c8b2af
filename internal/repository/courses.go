package repository

import (
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
)

func (r *Repository) GetCourse(courseID, section string) (*domain.Course, error) {
	query := `
		SELECT id, name, schedule, instructor_username, created_at, version
		FROM courses WHERE course_id = $1 AND section = $2
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	course := &domain.Course{
		CourseID: courseID,
		Section:  section,
	}

	dst := []any{&course.ID, &course.Name, &course.Schedule, &course.Instructor, &course.CreatedAt, &course.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, courseID, section).Scan(dst...); err != nil {
		return nil, mapError(err)
	}

	if err := r.loadAssignments(course); err != nil {
		return nil, err
	}

	return course, nil
}

// loadAssignments fills the ordered TA and lab section collections.
func (r *Repository) loadAssignments(course *domain.Course) error {
	taQuery := `
		SELECT username FROM course_tas WHERE course_pk = $1 ORDER BY id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, taQuery, course.ID)
	if err != nil {
		return mapError(err)
	}
	defer rows.Close()

	course.TAs = make([]string, 0)
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return err
		}
		course.TAs = append(course.TAs, username)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	labQuery := `
		SELECT id, section_id, ta_username FROM lab_sections WHERE course_pk = $1 ORDER BY id
	`

	ctx, cancel = r.queryContext()
	defer cancel()

	labRows, err := r.dbpool.QueryContext(ctx, labQuery, course.ID)
	if err != nil {
		return mapError(err)
	}
	defer labRows.Close()

	course.LabSections = make([]domain.LabSection, 0)
	for labRows.Next() {
		lab := domain.LabSection{
			CourseID: course.CourseID,
			Section:  course.Section,
		}
		if err := labRows.Scan(&lab.ID, &lab.SectionID, &lab.TA); err != nil {
			return err
		}
		course.LabSections = append(course.LabSections, lab)
	}

	return labRows.Err()
}

func (r *Repository) CreateCourse(course *domain.Course) error {
	query := `
		INSERT INTO courses (course_id, section, name, schedule)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{course.CourseID, course.Section, course.Name, course.Schedule}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&course.ID, &course.CreatedAt, &course.Version); err != nil {
		return mapError(err)
	}

	return nil
}

func (r *Repository) ListCourses() ([]*domain.Course, error) {
	query := `
		SELECT id, course_id, section, name, schedule, instructor_username, created_at, version
		FROM courses ORDER BY id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		course := &domain.Course{}
		dst := []any{&course.ID, &course.CourseID, &course.Section, &course.Name, &course.Schedule, &course.Instructor, &course.CreatedAt, &course.Version}
		if err := rows.Scan(dst...); err != nil {
			rows.Close()
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for _, course := range courses {
		if err := r.loadAssignments(course); err != nil {
			return nil, err
		}
	}

	return courses, nil
}

func (r *Repository) SetInstructor(courseID, section, username string) error {
	query := `
		UPDATE courses SET instructor_username = $1, version = version + 1
		WHERE course_id = $2 AND section = $3
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	var id int64
	if err := r.dbpool.QueryRowContext(ctx, query, username, courseID, section).Scan(&id); err != nil {
		return mapError(err)
	}

	return nil
}

func (r *Repository) AddCourseTA(courseID, section, username string) error {
	query := `
		INSERT INTO course_tas (course_pk, username)
		SELECT id, $3 FROM courses WHERE course_id = $1 AND section = $2
		ON CONFLICT (course_pk, username) DO NOTHING
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, courseID, section, username)
	if err != nil {
		return mapError(err)
	}

	// zero rows means either the course is missing or the TA was already
	// assigned; the caller has checked the course exists
	_, err = result.RowsAffected()
	return err
}

func (r *Repository) CreateLabSection(courseID, section, labID string) error {
	query := `
		INSERT INTO lab_sections (course_pk, section_id)
		SELECT id, $3 FROM courses WHERE course_id = $1 AND section = $2
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, courseID, section, labID); err != nil {
		return mapError(err)
	}

	return nil
}

func (r *Repository) GetLabSection(courseID, section, labID string) (*domain.LabSection, error) {
	query := `
		SELECT l.id, l.ta_username
		FROM lab_sections l JOIN courses c ON l.course_pk = c.id
		WHERE c.course_id = $1 AND c.section = $2 AND l.section_id = $3
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	lab := &domain.LabSection{
		SectionID: labID,
		CourseID:  courseID,
		Section:   section,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, courseID, section, labID).Scan(&lab.ID, &lab.TA); err != nil {
		return nil, mapError(err)
	}

	return lab, nil
}

func (r *Repository) SetLabSectionTA(courseID, section, labID, username string) error {
	query := `
		UPDATE lab_sections l SET ta_username = $4
		FROM courses c
		WHERE l.course_pk = c.id AND c.course_id = $1 AND c.section = $2 AND l.section_id = $3
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, courseID, section, labID, username)
	if err != nil {
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
