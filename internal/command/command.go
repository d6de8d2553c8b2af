package command

import (
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/config"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/notifier"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/throttle"
)

// Store is the entity store surface the interpreter consumes. The Postgres
// repository and the in-memory store both satisfy it.
type Store interface {
	GetAccount(username string) (*domain.Account, error)
	CreateAccount(account *domain.Account) error
	UpdateAccount(account *domain.Account) error
	DeleteAccount(username string) error
	ListAccounts() ([]*domain.Account, error)

	GetCourse(courseID, section string) (*domain.Course, error)
	CreateCourse(course *domain.Course) error
	ListCourses() ([]*domain.Course, error)
	SetInstructor(courseID, section, username string) error
	AddCourseTA(courseID, section, username string) error
	CreateLabSection(courseID, section, labID string) error
	GetLabSection(courseID, section, labID string) (*domain.LabSection, error)
	SetLabSectionTA(courseID, section, labID, username string) error
}

const (
	respParseError  = "Could not parse command."
	respNeedLogin   = "You need to log in first."
	respNoPrivilege = "You don't have privileges."
	respInternal    = "Internal error. Please try again."
)

type handlerFunc func(sess *Session, line parsedLine) string

type verbSpec struct {
	// roles is the set of role bits permitted to invoke the verb. Caller
	// privilege is separate from target-role validity, which handlers check
	// themselves.
	roles   domain.Role
	handler handlerFunc
}

type Interpreter struct {
	cfg      *config.Config
	validate *validator.Validate
	store    Store
	notifier notifier.Notifier
	limiter  throttle.Limiter

	verbs map[string]verbSpec
}

// NewInterpreter wires the command pipeline. limiter may be nil, in which
// case login attempts are not throttled.
func NewInterpreter(cfg *config.Config, store Store, n notifier.Notifier, limiter throttle.Limiter) (*Interpreter, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("course_id", func(fl validator.FieldLevel) bool {
		return domain.ValidCourseID(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	in := &Interpreter{
		cfg:      cfg,
		validate: validate,
		store:    store,
		notifier: n,
		limiter:  limiter,
	}

	anyRole := domain.RoleTA | domain.RoleInstructor | domain.RoleAdmin | domain.RoleSupervisor
	manage := domain.RoleAdmin | domain.RoleSupervisor

	in.verbs = map[string]verbSpec{
		"login":              {roles: 0, handler: in.login}, // session gate exempt
		"logout":             {roles: anyRole, handler: in.logout},
		"course":             {roles: manage, handler: in.course},
		"cr_account":         {roles: manage, handler: in.createAccount},
		"del_account":        {roles: manage, handler: in.deleteAccount},
		"edit_account":       {roles: manage, handler: in.editAccount},
		"notify":             {roles: manage, handler: in.notify},
		"assign_ins":         {roles: manage, handler: in.assignInstructor},
		"assign_ta":          {roles: manage | domain.RoleInstructor, handler: in.assignTA},
		"course_assignments": {roles: anyRole, handler: in.courseAssignments},
		"ta_assignments":     {roles: anyRole, handler: in.taAssignments},
		"contact":            {roles: anyRole, handler: in.contact},
	}

	return in, nil
}

// Command runs one raw line against the session and returns the exact
// response text. Validation order is fixed: parse, session gate, privilege,
// then per-verb arity and semantic checks. No failure mutates the store.
func (in *Interpreter) Command(sess *Session, raw string) string {
	line, err := parseLine(raw)
	if err != nil {
		return respParseError
	}
	if line.Verb == "" {
		return ""
	}

	spec, ok := in.verbs[line.Verb]
	if !ok {
		return respParseError
	}

	if line.Verb != "login" {
		if !sess.LoggedIn() {
			return respNeedLogin
		}
		if !sess.Account.Roles.Has(spec.roles) {
			return respNoPrivilege
		}
	}

	return spec.handler(sess, line)
}

func (in *Interpreter) internalError(verb string, err error) string {
	slog.Error("command failed", "verb", verb, "error", err)
	return respInternal
}

// displayName resolves a username to its account display name, falling back
// to the username when the account is gone.
func (in *Interpreter) displayName(username string) string {
	account, err := in.store.GetAccount(username)
	if err != nil {
		return username
	}
	return account.Name
}

// capitalize upper-cases the first letter only, as the response texts echo
// role tokens.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// joinAnd renders "a", "a and b", "a, b and c".
func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
