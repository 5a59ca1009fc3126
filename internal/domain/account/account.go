package account

import (
	"regexp"
	"strings"

	"github.com/eshop/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role distinguishes customers from administrators
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// Password cost for bcrypt
const bcryptCost = bcrypt.DefaultCost

// Account represents an account in the system
// It is the aggregate root for account-related operations
// The email is the natural unique key; uniqueness is enforced by the
// repository at registration time only, not when the email is mutated
type Account struct {
	shared.BaseEntity
	LastName     string
	FirstName    string
	Email        string
	PasswordHash string
	Role         Role
	Address      *Address // delivery address, users only
}

// NewUser creates a new customer account
func NewUser(lastName, firstName, email, password string) (*Account, error) {
	return newAccount(lastName, firstName, email, password, RoleUser)
}

// NewAdmin creates a new administrator account
func NewAdmin(lastName, firstName, email, password string) (*Account, error) {
	return newAccount(lastName, firstName, email, password, RoleAdmin)
}

func newAccount(lastName, firstName, email, password string, role Role) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Account{
		BaseEntity:   shared.NewBaseEntity(),
		LastName:     strings.TrimSpace(lastName),
		FirstName:    strings.TrimSpace(firstName),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

// SetLastName sets the account's last name
func (a *Account) SetLastName(lastName string) {
	a.LastName = strings.TrimSpace(lastName)
	a.Touch()
}

// SetFirstName sets the account's first name
func (a *Account) SetFirstName(firstName string) {
	a.FirstName = strings.TrimSpace(firstName)
	a.Touch()
}

// SetEmail sets the account's email
// Uniqueness is not re-checked here; only registration enforces it
func (a *Account) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return err
	}

	a.Email = email
	a.Touch()

	return nil
}

// SetPassword replaces the account's password
func (a *Account) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	a.PasswordHash = passwordHash
	a.Touch()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (a *Account) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return err == nil
}

// IsAdmin returns true if the account has the administrator role
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsUser returns true if the account has the customer role
func (a *Account) IsUser() bool {
	return a.Role == RoleUser
}

// SetAddress sets the delivery address
// Only customer accounts own an address
func (a *Account) SetAddress(addr Address) error {
	if a.Role != RoleUser {
		return shared.NewDomainError("INVALID_STATE", "Only customer accounts can have a delivery address")
	}

	a.Address = &addr
	a.Touch()

	return nil
}

// RemoveAddress removes the delivery address
func (a *Account) RemoveAddress() {
	a.Address = nil
	a.Touch()
}

// HasAddress returns true if a delivery address is set
func (a *Account) HasAddress() bool {
	return a.Address != nil
}

// FormattedAddress returns the address as a display line, or a placeholder
func (a *Account) FormattedAddress() string {
	if a.Address == nil {
		return "No address on file"
	}
	return a.Address.Format()
}

// FullName returns the account's display name
func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Validation functions

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
