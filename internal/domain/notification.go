package domain

// Notification is the message published to the notification queue. The mail
// worker turns it into an email; the command core never talks SMTP itself.
type Notification struct {
	ID      string `json:"id"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// AccountCreatedNotification carries the generated credentials for a new
// account to its owner.
func AccountCreatedNotification(account *Account, password string) Notification {
	return Notification{
		To:      account.Email,
		Subject: "Your course staffing account",
		Content: "An account has been created for you.\n\nUsername: " + account.Username +
			"\nPassword: " + password + "\n\nPlease log in and change your password.",
	}
}
