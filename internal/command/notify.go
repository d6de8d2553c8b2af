package command

import (
	"errors"
	"fmt"

	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/repository"
)

const notifyUsage = "notify must have at least 2 arguments. Correct usage: notify <subject> <content> -u <user_name> ..."

func (in *Interpreter) notify(sess *Session, line parsedLine) string {
	if len(line.Args) != 2 {
		return notifyUsage
	}
	subject, content := line.Args[0], line.Args[1]

	usernames, targeted := line.Flags["-u"]
	if targeted && len(usernames) == 0 {
		return notifyUsage
	}

	var targets []*domain.Account
	if targeted {
		// resolve every recipient before sending anything, so a bad name
		// means no partial delivery
		targets = make([]*domain.Account, 0, len(usernames))
		for _, username := range usernames {
			account, err := in.store.GetAccount(username)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return "User " + username + " does not exist."
				}
				return in.internalError("notify", err)
			}
			targets = append(targets, account)
		}
	} else {
		accounts, err := in.store.ListAccounts()
		if err != nil {
			return in.internalError("notify", err)
		}
		targets = accounts
	}

	for _, account := range targets {
		if err := in.notifier.Notify(account, subject, content); err != nil {
			return in.internalError("notify", err)
		}
	}

	if !targeted {
		return "All users have been notified."
	}
	if len(targets) == 1 {
		return "User " + targets[0].Username + " has been notified."
	}
	return fmt.Sprintf("%d users have been notified.", len(targets))
}
