package services

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	pinPattern   = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Party is the client on a quotation, or the issuing company.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	PinCode string `json:"pin_code,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	PAN     string `json:"pan,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Validate checks the format of the optional identifiers. Empty values pass.
func (p Party) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.GSTIN, format(ValidateGSTIN, "must be 15 characters in format 22AAAAA0000A1Z5")),
		validation.Field(&p.PAN, format(ValidatePAN, "must be 10 characters in format ABCDE1234F")),
		validation.Field(&p.PinCode, format(ValidatePINCode, "must be exactly 6 digits")),
		validation.Field(&p.Phone, format(ValidatePhone, "must be 10 digits starting with 6-9")),
		validation.Field(&p.Email, format(ValidateEmail, "must be a valid email address")),
	)
}

func format(check func(string) bool, message string) validation.Rule {
	return validation.By(func(value any) error {
		s, _ := value.(string)
		if check(s) {
			return nil
		}
		return errors.New(message)
	})
}

// ValidateGSTIN validates a GSTIN (15-character alphanumeric).
func ValidateGSTIN(gstin string) bool {
	gstin = strings.TrimSpace(strings.ToUpper(gstin))
	if gstin == "" {
		return true
	}
	return len(gstin) == 15 && gstinPattern.MatchString(gstin)
}

// ValidatePAN validates a PAN number (10-character alphanumeric).
func ValidatePAN(pan string) bool {
	pan = strings.TrimSpace(strings.ToUpper(pan))
	if pan == "" {
		return true
	}
	return len(pan) == 10 && panPattern.MatchString(pan)
}

// ValidatePINCode validates an Indian PIN code (6 digits, first digit non-zero).
func ValidatePINCode(pin string) bool {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return true
	}
	return pinPattern.MatchString(pin)
}

// ValidatePhone validates an Indian mobile number (10 digits starting with 6-9).
func ValidatePhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}

// ValidateEmail validates an email address format.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}
