// Package models holds the persisted entities of the profiles service.
package models

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is an account record that authenticates by email instead of username.
// It carries both the credential fields and the permission flags; there is no
// separate permissions entity.
//
// PasswordHash is a bcrypt hash and is never the plaintext password. An empty
// PasswordHash means the account has no usable credential and can never pass
// CheckPassword.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
}

// GetFullName returns the user's display name.
func (u *User) GetFullName() string {
	return u.Name
}

// GetShortName returns the user's display name. No distinct short form is
// computed.
func (u *User) GetShortName() string {
	return u.Name
}

// String returns the user's email, the login identifier.
func (u *User) String() string {
	return u.Email
}

// SetPassword hashes the plaintext password with bcrypt at the given cost and
// stores the hash. bcrypt embeds a per-record random salt in the hash itself.
func (u *User) SetPassword(password string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored
// hash. An account without a usable credential never matches.
func (u *User) CheckPassword(password string) bool {
	if !u.HasUsablePassword() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HasUsablePassword reports whether a credential has been set for the account.
func (u *User) HasUsablePassword() bool {
	return u.PasswordHash != ""
}

// NormalizeEmail canonicalizes an email address by lower-casing its domain
// segment (everything after the last '@'). The local part is left untouched,
// since mailbox names are case-sensitive in principle.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
