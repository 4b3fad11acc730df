package validation

import "testing"

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all required classes", "Abcd123!", true},
		{"special from allowed set", "restaurA#1", true},
		{"long mixed password", "Contact@1234567", true},
		{"too short", "Ab1#", false},
		{"no uppercase and no special", "abcd1234", false},
		{"no lowercase", "ABCD123!", false},
		{"no digit", "Abcdefg!", false},
		{"no special character", "Abcd1234", false},
		{"special outside allowed set", "Abcd1234?", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPassword(tt.password); got != tt.want {
				t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestIsValidContactNumber(t *testing.T) {
	tests := []struct {
		name    string
		contact string
		want    bool
	}{
		{"ten digits starting with 9", "9876543210", true},
		{"ten digits starting with 7", "7012345678", true},
		{"ten digits starting with 8", "8899776655", true},
		{"with 0/91 prefix", "0/919876543210", true},
		{"starts with 6", "6876543210", false},
		{"nine digits", "987654321", false},
		{"eleven digits", "98765432100", false},
		{"embedded in longer string", "x9876543210", false},
		{"letters", "98765abcde", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidContactNumber(tt.contact); got != tt.want {
				t.Errorf("IsValidContactNumber(%q) = %v, want %v", tt.contact, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain address", "customer@example.com", true},
		{"dotted local part", "first.last@example.co", true},
		{"subdomain", "a@mail.example.com", true},
		{"hyphenated local part", "first-last@example.in", true},
		{"missing at", "customerexample.com", false},
		{"missing domain", "customer@", false},
		{"missing local part", "@example.com", false},
		{"single letter final label", "customer@example.c", false},
		{"trailing dot", "customer@example.com.", false},
		{"spaces", "cust omer@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidPincode(t *testing.T) {
	tests := []struct {
		name    string
		pincode string
		want    bool
	}{
		{"six digits", "560034", true},
		{"five digits", "56003", false},
		{"seven digits", "5600345", false},
		{"letters", "56OO34", false},
		{"six digits with suffix", "560034x", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPincode(tt.pincode); got != tt.want {
				t.Errorf("IsValidPincode(%q) = %v, want %v", tt.pincode, got, tt.want)
			}
		})
	}
}

func TestIsValidRating(t *testing.T) {
	tests := []struct {
		name   string
		rating string
		want   bool
	}{
		{"five exactly", "5.0", true},
		{"low rating", "1.0", true},
		{"mid rating", "3.7", true},
		{"top of digit range", "4.9", true},
		{"above five", "5.1", false},
		{"zero", "0.5", false},
		{"no decimal", "4", false},
		{"two decimals", "4.55", false},
		{"comma separator", "4,5", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidRating(tt.rating); got != tt.want {
				t.Errorf("IsValidRating(%q) = %v, want %v", tt.rating, got, tt.want)
			}
		})
	}
}
