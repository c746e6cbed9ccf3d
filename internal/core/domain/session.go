package domain

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// User is the optional session identity.
type User struct {
	ID       int64
	Name     string
	Email    string
	Avatar   string
	JoinedAt time.Time
}

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var b strings.Builder
	b.WriteString("invalid fields:")
	for _, f := range fields {
		b.WriteString(" ")
		b.WriteString(f)
	}
	return b.String()
}

type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Validate() error {
	errs := FieldErrors{}
	if c.Email == "" {
		errs["email"] = "email is required"
	} else if !emailRe.MatchString(c.Email) {
		errs["email"] = "email is invalid"
	}
	if c.Password == "" {
		errs["password"] = "password is required"
	} else if len(c.Password) < 6 {
		errs["password"] = "password must be at least 6 characters"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Registration struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (r Registration) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(r.FirstName) == "" {
		errs["firstName"] = "first name is required"
	} else if len(r.FirstName) < 2 {
		errs["firstName"] = "first name must be at least 2 characters"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["lastName"] = "last name is required"
	} else if len(r.LastName) < 2 {
		errs["lastName"] = "last name must be at least 2 characters"
	}
	if r.Email == "" {
		errs["email"] = "email is required"
	} else if !emailRe.MatchString(r.Email) {
		errs["email"] = "email is invalid"
	}
	if r.Password == "" {
		errs["password"] = "password is required"
	} else if len(r.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	}
	if r.ConfirmPassword == "" {
		errs["confirmPassword"] = "password confirmation is required"
	} else if r.Password != r.ConfirmPassword {
		errs["confirmPassword"] = "passwords do not match"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AvatarInitials derives the up-to-two-letter avatar tag from a full name.
func AvatarInitials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}
