package auth

import "testing"

func TestPasswordService_HashIsDeterministicPerSalt(t *testing.T) {
	svc := NewPasswordService()

	salt, err := svc.NewSalt()
	if err != nil {
		t.Fatalf("NewSalt() error = %v", err)
	}

	first := svc.Hash("Contact@123", salt)
	second := svc.Hash("Contact@123", salt)
	if first != second {
		t.Errorf("same password and salt produced different digests: %q vs %q", first, second)
	}

	otherSalt, err := svc.NewSalt()
	if err != nil {
		t.Fatalf("NewSalt() error = %v", err)
	}
	if otherSalt == salt {
		t.Error("NewSalt() returned the same salt twice")
	}
	if svc.Hash("Contact@123", otherSalt) == first {
		t.Error("different salts produced the same digest")
	}
}

func TestPasswordService_Matches(t *testing.T) {
	svc := NewPasswordService()

	salt, err := svc.NewSalt()
	if err != nil {
		t.Fatalf("NewSalt() error = %v", err)
	}
	digest := svc.Hash("Abcd123!", salt)

	tests := []struct {
		name     string
		password string
		salt     string
		want     bool
	}{
		{"correct password", "Abcd123!", salt, true},
		{"wrong password", "Abcd123?", salt, false},
		{"wrong salt", "Abcd123!", salt + "x", false},
		{"empty password", "", salt, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Matches(tt.password, tt.salt, digest); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}
