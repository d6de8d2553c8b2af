package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
)

func TestNotify(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		wantSent int
	}{
		{"arity low", "notify subject", "notify must have at least 2 arguments. Correct usage: notify <subject> <content> -u <user_name> ...", 0},
		{"arity high", "notify subject content extra", "notify must have at least 2 arguments. Correct usage: notify <subject> <content> -u <user_name> ...", 0},
		{"flag without names", "notify subject content -u", "notify must have at least 2 arguments. Correct usage: notify <subject> <content> -u <user_name> ...", 0},
		{"all users", "notify subject content", "All users have been notified.", 3},
		{"single user", "notify subject content -u test_ta", "User test_ta has been notified.", 1},
		{"multiple users", "notify subject content -u test_ta test_account", "2 users have been notified.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, store, recorder := newTestInterpreter(t)
			admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)
			seedAccount(t, store, "test_account", "accountname", "pw", domain.RoleInstructor)
			seedAccount(t, store, "test_ta", "taname", "pw", domain.RoleTA)

			require.Equal(t, tt.want, in.Command(sessionFor(admin), tt.raw))
			assert.Len(t, recorder.Sent, tt.wantSent)
		})
	}
}

// A single unknown recipient aborts the whole dispatch before anything is
// delivered.
func TestNotifyUnknownRecipientSendsNothing(t *testing.T) {
	in, store, recorder := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)
	seedAccount(t, store, "test_ta", "taname", "pw", domain.RoleTA)

	got := in.Command(sessionFor(admin), "notify subject content -u test_ta mrwatts")
	require.Equal(t, "User mrwatts does not exist.", got)
	assert.Empty(t, recorder.Sent)
}

func TestNotifyQuotedSubjectAndContent(t *testing.T) {
	in, store, recorder := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)
	seedAccount(t, store, "test_ta", "taname", "pw", domain.RoleTA)

	got := in.Command(sessionFor(admin), `notify "Lab moved" "Lab 801 now meets in EMS 270." -u test_ta`)
	require.Equal(t, "User test_ta has been notified.", got)

	require.Len(t, recorder.Sent, 1)
	assert.Equal(t, "Lab moved", recorder.Sent[0].Subject)
	assert.Equal(t, "Lab 801 now meets in EMS 270.", recorder.Sent[0].Content)
	assert.Equal(t, "test_ta@uwm.edu", recorder.Sent[0].To)
}
