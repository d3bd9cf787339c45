// Package passwordx evaluates candidate passwords against the clinic's
// password policy. It is a pure function of its inputs so it can be shared
// verbatim between registration and password change.
package passwordx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Violation messages shown to the user. Every violated rule appends its
// message so the user sees the complete list, not just the first failure.
const (
	MsgTooShort       = "Password must be at least 8 characters long."
	MsgNoUppercase    = "Password must contain at least one uppercase letter."
	MsgNoLowercase    = "Password must contain at least one lowercase letter."
	MsgNoDigit        = "Password must contain at least one digit."
	MsgNoSpecial      = "Password must contain at least one special character."
	MsgLikeUsername   = "Password is too similar to the username."
	MsgLikeEmail      = "Password is too similar to the email address."
	MsgConfirmNoMatch = "Passwords do not match."

	minLength = 8
)

// Validate checks password against the policy and returns the ordered list
// of violation messages. An empty slice means the password is acceptable.
// Username and the local part of email are matched as case-insensitive
// substrings; either may be empty, which skips that rule.
func Validate(password, username, email string) []string {
	var violations []string

	// Characters, not bytes: a multibyte rune still counts as one.
	if utf8.RuneCountInString(password) < minLength {
		violations = append(violations, MsgTooShort)
	}

	// The class checks are independent, not exclusive: anything outside
	// ASCII alphanumerics counts as special, including unicode digits.
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		if r >= 'A' && r <= 'Z' {
			hasUpper = true
		}
		if r >= 'a' && r <= 'z' {
			hasLower = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			hasSpecial = true
		}
	}
	if !hasUpper {
		violations = append(violations, MsgNoUppercase)
	}
	if !hasLower {
		violations = append(violations, MsgNoLowercase)
	}
	if !hasDigit {
		violations = append(violations, MsgNoDigit)
	}
	if !hasSpecial {
		violations = append(violations, MsgNoSpecial)
	}

	lowered := strings.ToLower(password)
	if username != "" && strings.Contains(lowered, strings.ToLower(username)) {
		violations = append(violations, MsgLikeUsername)
	}
	if local := emailLocalPart(email); local != "" && strings.Contains(lowered, strings.ToLower(local)) {
		violations = append(violations, MsgLikeEmail)
	}

	return violations
}

// Join renders violations the way the forms display them: one string,
// space-separated, in rule order.
func Join(violations []string) string {
	return strings.Join(violations, " ")
}

// emailLocalPart returns everything before the first '@'. An address with no
// '@' compares as a whole, so a bare identifier still trips the rule.
func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
