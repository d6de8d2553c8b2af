package seed

import (
	"errors"
	"log/slog"

	"github.com/uwm-cs361-dev/course-staffing/backend/internal/command"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/config"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// EnsureSupervisor creates the initial supervisor account if it does not
// exist yet. Both the API server and the CLI run it at startup, so a fresh
// deployment always has someone able to log in.
func EnsureSupervisor(cfg *config.Config, store command.Store) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialSupervisor.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	supervisor := &domain.Account{
		Username:     cfg.InitialSupervisor.Username,
		PasswordHash: string(passwordHash),
		Name:         cfg.InitialSupervisor.Name,
		Email:        domain.DefaultEmail(cfg.InitialSupervisor.Username, cfg.Email.UserDomain),
		Roles:        domain.RoleSupervisor,
	}

	if err := store.CreateAccount(supervisor); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return err
	}

	slog.Info("initial supervisor created", "username", supervisor.Username)
	return nil
}

// Baseline loads a small staffing dataset for local development: one
// instructor, one TA, and one course with a lab section.
func Baseline(cfg *config.Config, store command.Store) error {
	accounts := []struct {
		username string
		name     string
		roles    domain.Role
	}{
		{"test_account", "accountname", domain.RoleInstructor},
		{"test_ta", "taname", domain.RoleTA},
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Account.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, a := range accounts {
		account := &domain.Account{
			Username:     a.username,
			PasswordHash: string(passwordHash),
			Name:         a.name,
			Email:        domain.DefaultEmail(a.username, cfg.Email.UserDomain),
			Roles:        a.roles,
		}
		if err := store.CreateAccount(account); err != nil && !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
	}

	course := &domain.Course{
		CourseID: "CS417",
		Section:  domain.DefaultSection,
		Name:     "Theory of Computation",
		Schedule: "TH12001315",
	}
	if err := store.CreateCourse(course); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return err
	}

	if err := store.CreateLabSection("CS417", domain.DefaultSection, "801"); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return err
	}

	return nil
}
