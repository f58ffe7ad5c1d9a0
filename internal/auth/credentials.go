package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/numee-project/numee-backend/internal/domain"
)

// Verifier checks a username/password pair and returns the identity it
// authenticates. Implementations must treat the username case-insensitively
// and the password case-sensitively.
type Verifier interface {
	Verify(username, password string) (*domain.Identity, bool)
}

// Account is one credential of a StaticVerifier.
type Account struct {
	Username     string // lookup key, matched case-insensitively
	DisplayName  string // carried into the resulting Identity
	Role         domain.Role
	PasswordHash string // bcrypt
}

// StaticVerifier verifies against a fixed in-memory account table.
//
// This is a demo placeholder, not a credential backend: accounts are
// hardcoded at startup and there is no registration, rotation, or lockout.
// A production deployment substitutes a real Verifier implementation; the
// session and navigation layers only see the interface.
type StaticVerifier struct {
	accounts map[string]Account
}

// NewStaticVerifier builds a verifier from the given accounts. Usernames
// are keyed lower-cased; a later duplicate replaces an earlier one.
func NewStaticVerifier(accounts []Account) *StaticVerifier {
	m := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		m[strings.ToLower(a.Username)] = a
	}
	return &StaticVerifier{accounts: m}
}

// DemoAccounts returns the two demo credentials: admin/admin and user/user.
// Hashes are computed at startup with bcrypt.MinCost since the passwords
// are public anyway.
func DemoAccounts() []Account {
	return []Account{
		{Username: "admin", DisplayName: "Admin", Role: domain.RoleAdmin, PasswordHash: mustHash("admin")},
		{Username: "user", DisplayName: "User", Role: domain.RoleUser, PasswordHash: mustHash("user")},
	}
}

// Verify implements Verifier.
func (v *StaticVerifier) Verify(username, password string) (*domain.Identity, bool) {
	a, ok := v.accounts[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, false
	}
	return &domain.Identity{Username: a.DisplayName, Role: a.Role}, true
}

func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		// bcrypt only fails on absurd cost or oversized input; neither
		// applies to the fixed demo table.
		panic(err)
	}
	return string(h)
}
