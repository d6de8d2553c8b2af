package command

import "github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"

// Session is the current logged-in account, or none. It is an explicit value
// handed to every Dispatch call rather than process state, so the CLI can own
// one while the HTTP surface keeps one per authenticated subject.
type Session struct {
	Account *domain.Account
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) LoggedIn() bool {
	return s != nil && s.Account != nil
}
