package repository

import (
	"sync"
	"time"

	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
)

// Memory is an in-process store with the same method set as Repository. It
// backs the command tests and the CLI's -memory mode. A single mutex
// serializes mutations, which covers the per-entity atomicity the store
// contract asks for.
type Memory struct {
	mu       sync.Mutex
	nextID   int64
	accounts []*domain.Account
	courses  []*domain.Course
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) id() int64 {
	m.nextID++
	return m.nextID
}

func copyAccount(a *domain.Account) *domain.Account {
	dup := *a
	return &dup
}

func copyCourse(c *domain.Course) *domain.Course {
	dup := *c
	if c.Instructor != nil {
		instructor := *c.Instructor
		dup.Instructor = &instructor
	}
	dup.TAs = append([]string(nil), c.TAs...)
	dup.LabSections = make([]domain.LabSection, len(c.LabSections))
	for i, lab := range c.LabSections {
		dup.LabSections[i] = lab
		if lab.TA != nil {
			ta := *lab.TA
			dup.LabSections[i].TA = &ta
		}
	}
	return &dup
}

func (m *Memory) findAccount(username string) *domain.Account {
	for _, a := range m.accounts {
		if a.Username == username {
			return a
		}
	}
	return nil
}

func (m *Memory) findCourse(courseID, section string) *domain.Course {
	for _, c := range m.courses {
		if c.CourseID == courseID && c.Section == section {
			return c
		}
	}
	return nil
}

func (m *Memory) GetAccount(username string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account := m.findAccount(username)
	if account == nil {
		return nil, ErrNotFound
	}
	return copyAccount(account), nil
}

func (m *Memory) CreateAccount(account *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findAccount(account.Username) != nil {
		return ErrDuplicate
	}

	account.ID = m.id()
	account.CreatedAt = time.Now()
	account.Version = 1
	m.accounts = append(m.accounts, copyAccount(account))
	return nil
}

func (m *Memory) UpdateAccount(account *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := m.findAccount(account.Username)
	if existing == nil {
		return ErrNotFound
	}

	account.Version = existing.Version + 1
	*existing = *copyAccount(account)
	return nil
}

func (m *Memory) DeleteAccount(username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, a := range m.accounts {
		if a.Username == username {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	m.accounts = append(m.accounts[:idx], m.accounts[idx+1:]...)

	// drop assignment references, mirroring the SQL schema's
	// SET NULL / CASCADE behavior
	for _, c := range m.courses {
		if c.Instructor != nil && *c.Instructor == username {
			c.Instructor = nil
		}
		tas := c.TAs[:0]
		for _, ta := range c.TAs {
			if ta != username {
				tas = append(tas, ta)
			}
		}
		c.TAs = tas
		for i := range c.LabSections {
			if c.LabSections[i].TA != nil && *c.LabSections[i].TA == username {
				c.LabSections[i].TA = nil
			}
		}
	}

	return nil
}

func (m *Memory) ListAccounts() ([]*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts := make([]*domain.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		accounts = append(accounts, copyAccount(a))
	}
	return accounts, nil
}

func (m *Memory) GetCourse(courseID, section string) (*domain.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	course := m.findCourse(courseID, section)
	if course == nil {
		return nil, ErrNotFound
	}
	return copyCourse(course), nil
}

func (m *Memory) CreateCourse(course *domain.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findCourse(course.CourseID, course.Section) != nil {
		return ErrDuplicate
	}

	course.ID = m.id()
	course.CreatedAt = time.Now()
	course.Version = 1
	m.courses = append(m.courses, copyCourse(course))
	return nil
}

func (m *Memory) ListCourses() ([]*domain.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	courses := make([]*domain.Course, 0, len(m.courses))
	for _, c := range m.courses {
		courses = append(courses, copyCourse(c))
	}
	return courses, nil
}

func (m *Memory) SetInstructor(courseID, section, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	course := m.findCourse(courseID, section)
	if course == nil {
		return ErrNotFound
	}
	course.Instructor = &username
	course.Version++
	return nil
}

func (m *Memory) AddCourseTA(courseID, section, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	course := m.findCourse(courseID, section)
	if course == nil {
		return ErrNotFound
	}
	for _, ta := range course.TAs {
		if ta == username {
			return nil
		}
	}
	course.TAs = append(course.TAs, username)
	course.Version++
	return nil
}

func (m *Memory) CreateLabSection(courseID, section, labID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	course := m.findCourse(courseID, section)
	if course == nil {
		return ErrNotFound
	}
	for _, lab := range course.LabSections {
		if lab.SectionID == labID {
			return ErrDuplicate
		}
	}
	course.LabSections = append(course.LabSections, domain.LabSection{
		ID:        m.id(),
		SectionID: labID,
		CourseID:  courseID,
		Section:   section,
	})
	return nil
}

func (m *Memory) GetLabSection(courseID, section, labID string) (*domain.LabSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	course := m.findCourse(courseID, section)
	if course == nil {
		return nil, ErrNotFound
	}
	for _, lab := range course.LabSections {
		if lab.SectionID == labID {
			dup := lab
			if lab.TA != nil {
				ta := *lab.TA
				dup.TA = &ta
			}
			return &dup, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SetLabSectionTA(courseID, section, labID, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	course := m.findCourse(courseID, section)
	if course == nil {
		return ErrNotFound
	}
	for i := range course.LabSections {
		if course.LabSections[i].SectionID == labID {
			course.LabSections[i].TA = &username
			return nil
		}
	}
	return ErrNotFound
}
