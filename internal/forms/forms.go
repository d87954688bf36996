// Package forms validates raw form submissions before they touch the database.
//
// Validators take the posted fields as a map and return one message per
// failing field. A missing key behaves like an empty value, so incomplete
// submissions surface as ordinary validation errors.
package forms

import "regexp"

// Errors maps a form field name to a human-readable validation message.
// An empty map means the submission is valid.
type Errors map[string]string

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.+_-]+@[a-zA-Z0-9._-]+\.[a-zA-Z]+$`)

// ValidateUser checks a registration form. All rules are evaluated
// independently so the user sees every problem at once.
//
// The emailTaken flag is resolved by the caller (it needs a database
// lookup); the matching error is only reported when the address itself
// is well-formed.
func ValidateUser(data map[string]string, emailTaken bool) Errors {
	errs := Errors{}

	if len(data["first_name"]) < 2 {
		errs["first_name"] = "First name must be at least 2 characters"
	}

	if len(data["last_name"]) < 2 {
		errs["last_name"] = "Last name must be at least 2 characters"
	}

	if !emailPattern.MatchString(data["email"]) {
		errs["email"] = "Invalid email address"
	} else if emailTaken {
		errs["email"] = "Email already in use"
	}

	if len(data["password"]) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}

	// Compared even when the password already failed its own rule.
	if data["password"] != data["confirm_password"] {
		errs["confirm_password"] = "Passwords do not match"
	}

	return errs
}

// ValidateBook checks an add/update book form.
func ValidateBook(data map[string]string) Errors {
	errs := Errors{}

	if len(data["title"]) < 1 {
		errs["title"] = "Title is required"
	}

	if len(data["desc"]) < 5 {
		errs["desc"] = "Description must be at least 5 characters"
	}

	return errs
}
