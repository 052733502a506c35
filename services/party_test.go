package services

import "testing"

func TestValidateGSTIN(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"27AAPFU0939F1ZV", true},
		{"27aapfu0939f1zv", true},
		{"27AAPFU0939F1Z", false},
		{"INVALID", false},
	}
	for _, tt := range tests {
		if got := ValidateGSTIN(tt.input); got != tt.want {
			t.Errorf("ValidateGSTIN(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormatValidators(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) bool
		good string
		bad  string
	}{
		{"PAN", ValidatePAN, "ABCDE1234F", "ABCDE12345"},
		{"PIN", ValidatePINCode, "400001", "012345"},
		{"Phone", ValidatePhone, "9876543210", "1234567890"},
		{"Email", ValidateEmail, "a.b@example.com", "notanemail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.fn(tt.good) {
				t.Errorf("%q should be valid", tt.good)
			}
			if tt.fn(tt.bad) {
				t.Errorf("%q should be invalid", tt.bad)
			}
			if !tt.fn("") {
				t.Error("empty should be valid")
			}
		})
	}
}

func TestParty_Validate(t *testing.T) {
	if err := (Party{Name: "Acme"}).Validate(); err != nil {
		t.Errorf("minimal party: %v", err)
	}
	err := (Party{Name: "Acme", Phone: "123", Email: "x"}).Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	errs, ok := err.(interface{ Filter() error })
	if !ok || errs.Filter() == nil {
		t.Errorf("expected validation.Errors, got %T", err)
	}
}
