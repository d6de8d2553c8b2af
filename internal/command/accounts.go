package command

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/repository"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	loginUsage       = "login must have exactly 2 arguments. Correct usage: login <user_name> <password>"
	logoutUsage      = "logout must have exactly 0 arguments. Correct usage: logout"
	crAccountUsage   = "cr_account must have at least 3 arguments. Correct usage: cr_account <user_name> <name> <role> ..."
	delAccountUsage  = "del_account must have exactly 1 argument. Correct usage: del_account <user_name>"
	editAccountUsage = "edit_account must have exactly at least 3 arguments. Correct usage: cr_account <user_name> <field> <value> ..."
	contactUsage     = "contact must have exactly 1 argument. Correct usage: contact <user_name>"
)

// accountFields maps editable field names to typed setters, registered
// statically so an unknown name fails before any store access.
var accountFields = map[string]func(*domain.Account, string){
	"name":  func(a *domain.Account, v string) { a.Name = v },
	"phone": func(a *domain.Account, v string) { a.Phone = v },
	"home":  func(a *domain.Account, v string) { a.Home = v },
	"email": func(a *domain.Account, v string) { a.Email = v },
}

func (in *Interpreter) login(sess *Session, line parsedLine) string {
	if len(line.Args) != 2 {
		return loginUsage
	}
	username, password := line.Args[0], line.Args[1]

	if in.limiter != nil {
		allowed, err := in.limiter.Allow(username)
		if err != nil {
			return in.internalError("login", err)
		}
		if !allowed {
			return "Too many failed login attempts. Try again later."
		}
	}

	account, err := in.store.GetAccount(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Incorrect username."
		}
		return in.internalError("login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		if in.limiter != nil {
			if err := in.limiter.RecordFailure(username); err != nil {
				slog.Error("failed to record login attempt", "username", username, "error", err)
			}
		}
		return "Incorrect password."
	}

	if in.limiter != nil {
		if err := in.limiter.Reset(username); err != nil {
			slog.Error("failed to reset login attempts", "username", username, "error", err)
		}
	}

	account.IsLoggedIn = true
	if err := in.store.UpdateAccount(account); err != nil {
		return in.internalError("login", err)
	}

	sess.Account = account
	return username + " logged in."
}

func (in *Interpreter) logout(sess *Session, line parsedLine) string {
	if len(line.Args) != 0 {
		return logoutUsage
	}
	if !sess.LoggedIn() {
		return "No one is currently logged in."
	}

	account := sess.Account
	account.IsLoggedIn = false
	if err := in.store.UpdateAccount(account); err != nil {
		return in.internalError("logout", err)
	}

	sess.Account = nil
	return account.Username + " is now logged out."
}

func (in *Interpreter) createAccount(sess *Session, line parsedLine) string {
	if len(line.Args) < 3 {
		return crAccountUsage
	}
	username, name := line.Args[0], line.Args[1]
	roleTokens := line.Args[2:]

	var roles domain.Role
	for _, token := range roleTokens {
		role, ok := domain.ParseRole(token)
		if !ok {
			return capitalize(token) + " is not a valid role. Valid roles are: supervisor, admin, ta, and instructor"
		}
		roles |= role
	}

	if _, err := in.store.GetAccount(username); err == nil {
		return "Account with user_name " + username + " already exists."
	} else if !errors.Is(err, repository.ErrNotFound) {
		return in.internalError("cr_account", err)
	}

	password := utils.GenerateRandomPassword(in.cfg.NewAccount.PasswordLength)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return in.internalError("cr_account", err)
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: string(passwordHash),
		Name:         name,
		Email:        domain.DefaultEmail(username, in.cfg.Email.UserDomain),
		Roles:        roles,
	}

	if err := in.store.CreateAccount(account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "Account with user_name " + username + " already exists."
		}
		return in.internalError("cr_account", err)
	}

	// hand the generated credentials to the owner; delivery failures must
	// not fail the create
	credentials := domain.AccountCreatedNotification(account, password)
	if err := in.notifier.Notify(account, credentials.Subject, credentials.Content); err != nil {
		slog.Error("failed to send account credentials", "username", username, "error", err)
	}

	if len(roleTokens) == 1 {
		return capitalize(roleTokens[0]) + " account created for " + username + "."
	}
	return "Account created for " + username + " with roles: " + strings.Join(roleTokens, ", ") + "."
}

func (in *Interpreter) deleteAccount(sess *Session, line parsedLine) string {
	if len(line.Args) != 1 {
		return delAccountUsage
	}
	username := line.Args[0]

	if err := in.store.DeleteAccount(username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "There is no account with user_name " + username + "."
		}
		return in.internalError("del_account", err)
	}

	return "Account for " + username + " deleted."
}

func (in *Interpreter) editAccount(sess *Session, line parsedLine) string {
	if len(line.Args) == 0 {
		return editAccountUsage
	}
	username := line.Args[0]

	account, err := in.store.GetAccount(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "There is no account with user_name " + username + "."
		}
		return in.internalError("edit_account", err)
	}

	// field names are checked before arity so a typo is reported even when
	// its value is missing
	for i := 1; i < len(line.Args); i += 2 {
		if _, ok := accountFields[line.Args[i]]; !ok {
			return line.Args[i] + " is not a valid field."
		}
	}

	if len(line.Args) < 3 || len(line.Args)%2 == 0 {
		return editAccountUsage
	}

	fields := make([]string, 0, (len(line.Args)-1)/2)
	for i := 1; i+1 < len(line.Args); i += 2 {
		accountFields[line.Args[i]](account, line.Args[i+1])
		fields = append(fields, line.Args[i])
	}

	if err := in.store.UpdateAccount(account); err != nil {
		return in.internalError("edit_account", err)
	}

	if len(fields) == 1 {
		return username + " " + fields[0] + " update to " + line.Args[2] + "."
	}
	return username + " " + joinAnd(fields) + " updated."
}

func (in *Interpreter) contact(sess *Session, line parsedLine) string {
	if len(line.Args) != 1 {
		return contactUsage
	}
	username := line.Args[0]

	account, err := in.store.GetAccount(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "User " + username + " does not exist."
		}
		return in.internalError("contact", err)
	}

	firstName := ""
	if parts := strings.Fields(account.Name); len(parts) > 0 {
		firstName = parts[0]
	}

	return strings.Join([]string{account.Username, firstName, account.Phone, account.Email}, " ")
}
