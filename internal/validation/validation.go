package validation

import "strings"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

// DigitString requires value to be exactly n digits when present; empty
// values pass (the field is optional).
func DigitString(field, value string, n int, v Violations) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if len(value) != n {
		v[field] = "wrong_length"
		return
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			v[field] = "digits_only"
			return
		}
	}
}
