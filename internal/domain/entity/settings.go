package entity

// Settings holds the free-form configuration text shown to users.
// Mutated rarely, read on most user-facing requests.
type Settings struct {
	WelcomeMessage      string `json:"welcomeMessage"`
	WebWelcomeMessage   string `json:"webWelcomeMessage"`
	AdminWelcomeMessage string `json:"adminWelcomeMessage"`
}

// DefaultSettings returns the settings seeded into a fresh document.
func DefaultSettings() Settings {
	return Settings{
		WelcomeMessage:      "Welcome to the Worker Management System. Select your role to get started.",
		WebWelcomeMessage:   "Welcome to your dashboard.",
		AdminWelcomeMessage: "Welcome to the admin panel. Manage your workforce and monitor operations.",
	}
}

// SuperAdmin describes the fixed super administrator configured for a
// deployment. It lives in the document for reference but authorization always
// checks the configured id, never this stored copy.
type SuperAdmin struct {
	ChatID     string `json:"chatId"`
	Username   string `json:"username"`
	LastActive string `json:"lastActive,omitempty"`
	Role       string `json:"role"`
}
