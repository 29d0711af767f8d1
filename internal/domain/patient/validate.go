package patient

import (
	"strings"
	"unicode"
)

// ValidationErrors collects every failed rule so the caller sees the full
// list in one response.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// Validate checks the patient's registration fields and returns every
// violation at once, or nil when the record is acceptable.
func Validate(p *Patient) error {
	var errs ValidationErrors

	if err := validateName(p.Name); err != "" {
		errs = append(errs, err)
	}
	if p.Age < 1 || p.Age > 120 {
		errs = append(errs, "Age must be between 1 and 120")
	}
	if err := validateContact(p.Contact); err != "" {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateName(name string) string {
	words := strings.Fields(name)
	if len(words) < 2 {
		return "Name must have at least 2 words, each starting with a capital letter"
	}
	for _, w := range words {
		r := []rune(w)
		if !unicode.IsUpper(r[0]) {
			return "Name must have at least 2 words, each starting with a capital letter"
		}
	}
	return ""
}

func validateContact(contact string) string {
	if len(contact) != 10 {
		return "Contact number must be exactly 10 digits"
	}
	for _, r := range contact {
		if r < '0' || r > '9' {
			return "Contact number must be exactly 10 digits"
		}
	}
	return ""
}
