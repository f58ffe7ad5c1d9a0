package domain

// Role represents the authorization level of an authenticated identity.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// View identifies one of the site's renderable views. The set is closed:
// every navigation request resolves to exactly one of these.
type View string

const (
	ViewHome          View = "home"
	ViewDictionary    View = "dictionary"
	ViewGuide         View = "guide"
	ViewQuiz          View = "quiz"
	ViewGames         View = "games"
	ViewMemoryGame    View = "memory-game"
	ViewFillInBlank   View = "fill-in-blank"
	ViewScrabbleGame  View = "scrabble-game"
	ViewCertification View = "certification"
	ViewLogin         View = "login"
	ViewAdmin         View = "admin"
	ViewUserDashboard View = "user-dashboard"
	ViewContact       View = "contact"
)

func (v View) String() string { return string(v) }

func (v View) IsValid() bool {
	switch v {
	case ViewHome, ViewDictionary, ViewGuide, ViewQuiz, ViewGames,
		ViewMemoryGame, ViewFillInBlank, ViewScrabbleGame, ViewCertification,
		ViewLogin, ViewAdmin, ViewUserDashboard, ViewContact:
		return true
	}
	return false
}

// ParseView maps a requested view name to a View. Unrecognized names resolve
// to ViewHome; the fallback is a deliberate case of the navigation contract,
// not an error.
func ParseView(s string) View {
	v := View(s)
	if !v.IsValid() {
		return ViewHome
	}
	return v
}

// Theme is the persisted visual theme preference.
type Theme string

const (
	ThemeSystem  Theme = "system"
	ThemeLight   Theme = "light"
	ThemeDark    Theme = "dark"
	ThemeClassic Theme = "classic"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeSystem, ThemeLight, ThemeDark, ThemeClassic:
		return true
	}
	return false
}
