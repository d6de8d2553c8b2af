package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
)

func TestMemoryAccounts(t *testing.T) {
	m := NewMemory()

	_, err := m.GetAccount("bob")
	require.ErrorIs(t, err, ErrNotFound)

	account := &domain.Account{Username: "bob", Name: "Bob", Roles: domain.RoleTA}
	require.NoError(t, m.CreateAccount(account))
	require.ErrorIs(t, m.CreateAccount(&domain.Account{Username: "bob"}), ErrDuplicate)

	got, err := m.GetAccount("bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)

	// the returned copy must not alias the stored account
	got.Name = "Changed"
	again, err := m.GetAccount("bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", again.Name)

	got.Name = "Robert"
	require.NoError(t, m.UpdateAccount(got))
	updated, err := m.GetAccount("bob")
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)
	assert.Greater(t, updated.Version, account.Version)

	require.NoError(t, m.DeleteAccount("bob"))
	require.ErrorIs(t, m.DeleteAccount("bob"), ErrNotFound)
}

func TestMemoryCourses(t *testing.T) {
	m := NewMemory()

	course := &domain.Course{CourseID: "CS417", Section: "001", Name: "Theory of Computation"}
	require.NoError(t, m.CreateCourse(course))
	require.ErrorIs(t, m.CreateCourse(&domain.Course{CourseID: "CS417", Section: "001"}), ErrDuplicate)

	require.NoError(t, m.CreateLabSection("CS417", "001", "801"))
	require.ErrorIs(t, m.CreateLabSection("CS417", "001", "801"), ErrDuplicate)
	require.ErrorIs(t, m.CreateLabSection("CS999", "001", "801"), ErrNotFound)

	require.NoError(t, m.SetInstructor("CS417", "001", "prof"))
	require.NoError(t, m.AddCourseTA("CS417", "001", "ta1"))
	require.NoError(t, m.AddCourseTA("CS417", "001", "ta1")) // idempotent
	require.NoError(t, m.SetLabSectionTA("CS417", "001", "801", "ta1"))
	require.ErrorIs(t, m.SetLabSectionTA("CS417", "001", "999", "ta1"), ErrNotFound)

	got, err := m.GetCourse("CS417", "001")
	require.NoError(t, err)
	require.NotNil(t, got.Instructor)
	assert.Equal(t, "prof", *got.Instructor)
	assert.Equal(t, []string{"ta1"}, got.TAs)
	require.Len(t, got.LabSections, 1)
	require.NotNil(t, got.LabSections[0].TA)
	assert.Equal(t, "ta1", *got.LabSections[0].TA)

	lab, err := m.GetLabSection("CS417", "001", "801")
	require.NoError(t, err)
	assert.Equal(t, "801", lab.SectionID)
}

func TestMemoryDeleteAccountClearsReferences(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.CreateAccount(&domain.Account{Username: "prof"}))
	require.NoError(t, m.CreateAccount(&domain.Account{Username: "ta1"}))
	require.NoError(t, m.CreateCourse(&domain.Course{CourseID: "CS417", Section: "001"}))
	require.NoError(t, m.CreateLabSection("CS417", "001", "801"))
	require.NoError(t, m.SetInstructor("CS417", "001", "prof"))
	require.NoError(t, m.AddCourseTA("CS417", "001", "ta1"))
	require.NoError(t, m.SetLabSectionTA("CS417", "001", "801", "ta1"))

	require.NoError(t, m.DeleteAccount("prof"))
	require.NoError(t, m.DeleteAccount("ta1"))

	got, err := m.GetCourse("CS417", "001")
	require.NoError(t, err)
	assert.Nil(t, got.Instructor)
	assert.Empty(t, got.TAs)
	require.Len(t, got.LabSections, 1)
	assert.Nil(t, got.LabSections[0].TA)
}

func TestMemoryListOrder(t *testing.T) {
	m := NewMemory()

	for _, u := range []string{"a", "b", "c"} {
		require.NoError(t, m.CreateAccount(&domain.Account{Username: u}))
	}

	accounts, err := m.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "a", accounts[0].Username)
	assert.Equal(t, "c", accounts[2].Username)
}
