package auth

import "errors"

// Validation errors surfaced inline next to the offending field; the request
// is never sent when one of these fires.
var (
	ErrEmailRequired    = errors.New("Email address is required. Please enter your email to continue")
	ErrPasswordRequired = errors.New("Password is required. Please enter your password to continue")
	ErrFirstNameInvalid = errors.New("First name is required and must contain only letters (max 50 characters)")
	ErrLastNameInvalid  = errors.New("Last name is required and must contain only letters (max 50 characters)")
	ErrEmailInvalid     = errors.New("Please enter a valid email address")
	ErrWeakPassword     = errors.New("Password does not satisfy the strength requirements")
	ErrNotAuthenticated = errors.New("You are not authenticated. Please log in.")
)
