package validate

import (
	"fmt"
	"regexp"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dateKeyRx matches the unpadded-year, zero-padded month/day date key
// format used throughout the app ("2024-01-05").
var dateKeyRx = regexp.MustCompile(`^\d{1,4}-\d{2}-\d{2}$`)

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func Password(v string) error {
	if err := NonEmpty("password", v); err != nil {
		return err
	}
	if len(v) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

func DateKey(v string) error {
	if v == "" {
		return fmt.Errorf("date is required")
	}
	if !dateKeyRx.MatchString(v) {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", v)
	}
	return nil
}

// -------- Request specific helpers ----------

func Register(username, email, password string) error {
	if err := NonEmpty("username", username); err != nil {
		return err
	}
	if err := Email(email); err != nil {
		return err
	}
	return Password(password)
}

func Login(email, password string) error {
	if err := Email(email); err != nil {
		return err
	}
	return NonEmpty("password", password)
}
