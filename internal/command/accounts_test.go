package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
)

func TestLogin(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	seedAccount(t, store, "test_account", "accountname", "secret", domain.RoleInstructor)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"arity low", "login test_account", "login must have exactly 2 arguments. Correct usage: login <user_name> <password>"},
		{"arity high", "login test_account secret extra", "login must have exactly 2 arguments. Correct usage: login <user_name> <password>"},
		{"unknown user", "login nobody secret", "Incorrect username."},
		{"wrong password", "login test_account wrong", "Incorrect password."},
		{"success", "login test_account secret", "test_account logged in."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, in.Command(NewSession(), tt.raw))
		})
	}
}

func TestLoginMarksAccountLoggedIn(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	seedAccount(t, store, "test_account", "accountname", "secret", domain.RoleInstructor)

	sess := NewSession()
	require.Equal(t, "test_account logged in.", in.Command(sess, "login test_account secret"))
	require.True(t, sess.LoggedIn())

	stored, err := store.GetAccount("test_account")
	require.NoError(t, err)
	assert.True(t, stored.IsLoggedIn)
}

func TestLogout(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	seedAccount(t, store, "test_account", "accountname", "secret", domain.RoleInstructor)

	sess := NewSession()
	in.Command(sess, "login test_account secret")

	require.Equal(t, "logout must have exactly 0 arguments. Correct usage: logout", in.Command(sess, "logout now"))
	require.Equal(t, "test_account is now logged out.", in.Command(sess, "logout"))
	require.False(t, sess.LoggedIn())

	stored, err := store.GetAccount("test_account")
	require.NoError(t, err)
	assert.False(t, stored.IsLoggedIn)
}

func TestCreateAccount(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)
	sess := sessionFor(admin)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"arity", "cr_account newuser Name", "cr_account must have at least 3 arguments. Correct usage: cr_account <user_name> <name> <role> ..."},
		{"bad role", "cr_account newuser Name dean", "Dean is not a valid role. Valid roles are: supervisor, admin, ta, and instructor"},
		{"single role", "cr_account newuser Name ta", "Ta account created for newuser."},
		{"duplicate", "cr_account newuser Name ta", "Account with user_name newuser already exists."},
		{"multi role", "cr_account other Name ta instructor", "Account created for other with roles: ta, instructor."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, in.Command(sess, tt.raw))
		})
	}

	created, err := store.GetAccount("newuser")
	require.NoError(t, err)
	assert.True(t, created.Roles.IsTA())
	assert.Equal(t, "newuser@uwm.edu", created.Email)

	multi, err := store.GetAccount("other")
	require.NoError(t, err)
	assert.True(t, multi.Roles.IsTA())
	assert.True(t, multi.Roles.IsInstructor())
}

func TestCreateAccountSendsCredentials(t *testing.T) {
	in, store, recorder := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)

	in.Command(sessionFor(admin), "cr_account newuser Name ta")

	require.Len(t, recorder.Sent, 1)
	assert.Equal(t, "newuser@uwm.edu", recorder.Sent[0].To)
	assert.Contains(t, recorder.Sent[0].Content, "Username: newuser")
	assert.Contains(t, recorder.Sent[0].Content, "Password: ")
}

func TestDeleteAccount(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)
	seedAccount(t, store, "test_ta", "taname", "pw", domain.RoleTA)
	sess := sessionFor(admin)

	require.Equal(t, "del_account must have exactly 1 argument. Correct usage: del_account <user_name>",
		in.Command(sess, "del_account"))
	require.Equal(t, "There is no account with user_name mrwatts.",
		in.Command(sess, "del_account mrwatts"))
	require.Equal(t, "Account for test_ta deleted.",
		in.Command(sess, "del_account test_ta"))
	require.Equal(t, "There is no account with user_name test_ta.",
		in.Command(sess, "del_account test_ta"))
}

func TestEditAccount(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)
	seedAccount(t, store, "test_account", "accountname", "pw", domain.RoleInstructor)
	sess := sessionFor(admin)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no args", "edit_account", "edit_account must have exactly at least 3 arguments. Correct usage: cr_account <user_name> <field> <value> ..."},
		{"missing account wins over arity", "edit_account mrwatts", "There is no account with user_name mrwatts."},
		{"existing account bare", "edit_account test_account", "edit_account must have exactly at least 3 arguments. Correct usage: cr_account <user_name> <field> <value> ..."},
		{"bad field before arity", "edit_account test_account address", "address is not a valid field."},
		{"even args", "edit_account test_account name", "edit_account must have exactly at least 3 arguments. Correct usage: cr_account <user_name> <field> <value> ..."},
		{"single field", "edit_account test_account phone 4145550100", "test_account phone update to 4145550100."},
		{"multi field", "edit_account test_account phone 4145550101 home 'Oak St'", "test_account phone and home updated."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, in.Command(sess, tt.raw))
		})
	}

	edited, err := store.GetAccount("test_account")
	require.NoError(t, err)
	assert.Equal(t, "4145550101", edited.Phone)
	assert.Equal(t, "Oak St", edited.Home)
}

func TestContact(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	ta := seedAccount(t, store, "test_ta", "taname", "pw", domain.RoleTA)
	account := seedAccount(t, store, "test_account", "Pat Smith", "pw", domain.RoleInstructor)
	account.Phone = "4145550100"
	require.NoError(t, store.UpdateAccount(account))

	sess := sessionFor(ta)

	require.Equal(t, "contact must have exactly 1 argument. Correct usage: contact <user_name>",
		in.Command(sess, "contact"))
	require.Equal(t, "User mrwatts does not exist.", in.Command(sess, "contact mrwatts"))

	got := in.Command(sess, "contact test_account")
	require.Equal(t, "test_account Pat 4145550100 test_account@uwm.edu", got)
	require.Equal(t, 4, len(strings.Fields(got)))
}
