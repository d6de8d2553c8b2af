package command

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
)

func TestCourseAssignments(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)
	seedAccount(t, store, "test_account", "accountname", "pw", domain.RoleInstructor)
	seedAccount(t, store, "test_ta", "taname", "pw", domain.RoleTA)
	seedCourse(t, store, "CS417", "001", "Theory of Computation", "801")
	sess := sessionFor(admin)

	require.Equal(t, "course_assignments must have exactly 2 arguments. Correct usage: course_assignments <course_id> <section>",
		in.Command(sess, "course_assignments CS417"))
	require.Equal(t, "Course with ID CS999-001 does not exist.",
		in.Command(sess, "course_assignments CS999 001"))

	// unstaffed course renders an empty instructor and no TA lines
	require.Equal(t, "CS417-001:\nInstructor: \n\nTAs:\n",
		in.Command(sess, "course_assignments CS417 001"))

	in.Command(sess, "assign_ins test_account CS417")
	in.Command(sess, "assign_ta test_ta CS417")
	in.Command(sess, "assign_ta test_ta CS417 -s 801")

	require.Equal(t, "CS417-001:\nInstructor: accountname\n\nTAs:\ntaname - 801\n",
		in.Command(sess, "course_assignments CS417 001"))
}

func TestCourseAssignmentsLabOnlyTA(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)
	seedAccount(t, store, "test_ta", "taname", "pw", domain.RoleTA)
	seedCourse(t, store, "CS417", "001", "Theory of Computation", "801")
	sess := sessionFor(admin)

	// assigned to the lab but never to the course itself; still listed
	in.Command(sess, "assign_ta test_ta CS417 -s 801")

	require.Equal(t, "CS417-001:\nInstructor: \n\nTAs:\ntaname - 801\n",
		in.Command(sess, "course_assignments CS417 001"))
}

func TestTAAssignments(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)
	seedAccount(t, store, "test_account", "accountname", "pw", domain.RoleInstructor)
	seedAccount(t, store, "test_ta", "taname", "pw", domain.RoleTA)
	seedCourse(t, store, "CS417", "001", "Theory of Computation", "801")
	seedCourse(t, store, "CS361", "001", "Intro to Software Eng.")
	sess := sessionFor(admin)

	require.Equal(t, "ta_assignments must have exactly 0 arguments. Correct usage: ta_assignments",
		in.Command(sess, "ta_assignments extra"))

	in.Command(sess, "assign_ins test_account CS417")
	in.Command(sess, "assign_ta test_ta CS417")
	in.Command(sess, "assign_ta test_ta CS417 -s 801")

	want := "CS417-001:\nInstructor: accountname\n\nTAs:\ntaname - 801\n" +
		"\n" +
		"CS361-001:\nInstructor: \n\nTAs:\n"
	require.Equal(t, want, in.Command(sess, "ta_assignments"))
}

func TestTAAssignmentsEmpty(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)

	require.Equal(t, "", in.Command(sessionFor(admin), "ta_assignments"))
}

func TestDeleteAccountClearsAssignments(t *testing.T) {
	in, store, _ := newTestInterpreter(t)
	admin := seedAccount(t, store, "admin", "Ad Min", "pw", domain.RoleAdmin)
	seedAccount(t, store, "test_ta", "taname", "pw", domain.RoleTA)
	seedCourse(t, store, "CS417", "001", "Theory of Computation", "801")
	sess := sessionFor(admin)

	in.Command(sess, "assign_ta test_ta CS417")
	in.Command(sess, "assign_ta test_ta CS417 -s 801")
	in.Command(sess, "del_account test_ta")

	require.Equal(t, "CS417-001:\nInstructor: \n\nTAs:\n",
		in.Command(sess, "course_assignments CS417 001"))
}
