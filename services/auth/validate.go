package auth

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z]+(?:[-'][A-Za-z]+)*$`)

	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasswordCriteria mirrors the per-rule indicators the password form shows.
// Submission is enabled only when every criterion holds.
type PasswordCriteria struct {
	HasUppercase    bool `json:"hasUppercase"`
	HasLowercase    bool `json:"hasLowercase"`
	HasNumber       bool `json:"hasNumber"`
	HasSpecialChar  bool `json:"hasSpecialChar"`
	IsBetweenLength bool `json:"isBetweenLength"`
	NotSameAsOld    bool `json:"notSameAsOld"`
	PasswordsMatch  bool `json:"passwordsMatch"`
}

// EvaluatePassword checks the new password against the five strength rules,
// the not-same-as-old rule and the confirmation match.
func EvaluatePassword(oldPassword, newPassword, confirmPassword string) PasswordCriteria {
	return PasswordCriteria{
		HasUppercase:    upperPattern.MatchString(newPassword),
		HasLowercase:    lowerPattern.MatchString(newPassword),
		HasNumber:       digitPattern.MatchString(newPassword),
		HasSpecialChar:  specialPattern.MatchString(newPassword),
		IsBetweenLength: len(newPassword) >= 8 && len(newPassword) <= 16,
		NotSameAsOld:    newPassword != oldPassword,
		PasswordsMatch:  newPassword == confirmPassword,
	}
}

// Satisfied reports whether every criterion holds.
func (c PasswordCriteria) Satisfied() bool {
	return c.HasUppercase && c.HasLowercase && c.HasNumber &&
		c.HasSpecialChar && c.IsBetweenLength && c.NotSameAsOld && c.PasswordsMatch
}

// Strong reports password strength without considering the confirmation,
// matching the Strong/Weak indicator next to the input.
func (c PasswordCriteria) Strong() bool {
	return c.HasUppercase && c.HasLowercase && c.HasNumber &&
		c.HasSpecialChar && c.IsBetweenLength && c.NotSameAsOld
}

// ValidateName checks a first or last name: required, at most 50 characters,
// letters with optional hyphens or apostrophes between parts.
func ValidateName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 50 {
		return false
	}
	return namePattern.MatchString(name)
}

// ValidateEmail checks the email shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
