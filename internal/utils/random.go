package utils

import (
	"math/rand"

	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery",
	"Quinn", "Dana", "Robin", "Sam", "Drew", "Logan", "Reese", "Skyler",
}
var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas", "Moore",
}

var digits = "0123456789"

func GenerateRandomName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func GenerateUsernameFromName(name string) string {
	username := ""
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r >= 'a' && r <= 'z' {
			username += string(r)
		}
	}
	if len(username) > 8 {
		username = username[:8]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

var seedRoles = []domain.Role{
	domain.RoleTA,
	domain.RoleInstructor,
	domain.RoleAdmin,
}

func GenerateRandomRole() domain.Role {
	return seedRoles[rand.Intn(len(seedRoles))]
}

func GenerateRandomAccount(password string, emailDomainName string) (*domain.Account, error) {
	name := GenerateRandomName()
	username := GenerateUsernameFromName(name)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: string(passwordHash),
		Name:         name,
		Email:        domain.DefaultEmail(username, emailDomainName),
		Roles:        GenerateRandomRole(),
	}

	return account, nil
}

// GenerateRandomPhone returns a ten digit phone number string.
func GenerateRandomPhone() string {
	phone := make([]byte, 10)
	for i := range phone {
		phone[i] = digits[rand.Intn(len(digits))]
	}
	return string(phone)
}
