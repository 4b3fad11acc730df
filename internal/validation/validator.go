package validation

import (
	"regexp"
	"strings"
)

// Boundary-format gatekeepers applied before any persistence attempt.
// Each predicate is total and never normalizes its input; the whole
// string must match, not a substring.

var (
	contactNumberRe = regexp.MustCompile(`^(0/91)?[7-9][0-9]{9}$`)
	emailRe         = regexp.MustCompile(`^[\w.+-]*[\w.-]@(\w+\.)+\w+\w$`)
	pincodeRe       = regexp.MustCompile(`^[0-9]{6}$`)
	ratingRe        = regexp.MustCompile(`^[1-4]\.[0-9]$`)
)

const passwordSpecials = "#@$%&*!^"

// IsValidPassword reports whether the password is strong enough: at
// least 8 characters, with at least one lowercase letter, one uppercase
// letter, one digit and one character from #@$%&*!^.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// IsValidContactNumber reports whether the contact number is ten digits
// starting with 7, 8 or 9, with an optional "0/91" prefix.
func IsValidContactNumber(contactNumber string) bool {
	return contactNumberRe.MatchString(contactNumber)
}

// IsValidEmail reports whether the email is local-part@domain with
// dot-separated word-character labels.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPincode reports whether the pincode is exactly six digits.
func IsValidPincode(pincode string) bool {
	return pincodeRe.MatchString(pincode)
}

// IsValidRating reports whether the rating is "5.0" or a single digit
// 1-4 followed by a dot and a single digit.
func IsValidRating(customerRating string) bool {
	if customerRating == "5.0" {
		return true
	}
	return ratingRe.MatchString(customerRating)
}
