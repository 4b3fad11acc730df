package services

import (
	"errors"
	"testing"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/mocks"
)

// createPolicyServiceForTest creates a PolicyService with mock Casbin enforcer
func createPolicyServiceForTest(t *testing.T) (domain.PolicyService, *mocks.MockCasbinEnforcer) {
	t.Helper()

	enforcer := mocks.NewMockCasbinEnforcer()
	policyService := NewPolicyServiceWithEnforcer(enforcer)
	return policyService, enforcer
}

func TestPolicyServiceImpl_AddPolicy(t *testing.T) {
	tests := []struct {
		name          string
		role          string
		resource      string
		action        string
		setupMock     func(*testing.T, *mocks.MockCasbinEnforcer)
		expectedError error
	}{
		{
			name:     "successful policy addition",
			role:     "role_customer",
			resource: "/order",
			action:   "POST",
			setupMock: func(t *testing.T, enforcer *mocks.MockCasbinEnforcer) {
				enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
					if len(params) != 3 || params[0].(string) != "role_customer" {
						t.Errorf("unexpected params %v", params)
					}
					return true, nil
				}
			},
		},
		{
			name:     "add policy fails",
			role:     "role_customer",
			resource: "/order",
			action:   "POST",
			setupMock: func(t *testing.T, enforcer *mocks.MockCasbinEnforcer) {
				enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
					return false, errors.New("adapter error")
				}
				enforcer.SavePolicyFunc = func() error {
					t.Error("SavePolicy should not be called when AddPolicy fails")
					return nil
				}
			},
			expectedError: errors.New("adapter error"),
		},
		{
			name:     "save policy fails",
			role:     "role_customer",
			resource: "/order",
			action:   "POST",
			setupMock: func(t *testing.T, enforcer *mocks.MockCasbinEnforcer) {
				enforcer.SavePolicyFunc = func() error {
					return errors.New("save failed")
				}
			},
			expectedError: errors.New("save failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, enforcer := createPolicyServiceForTest(t)
			if tt.setupMock != nil {
				tt.setupMock(t, enforcer)
			}

			err := svc.AddPolicy(tt.role, tt.resource, tt.action)
			if tt.expectedError != nil {
				if err == nil || err.Error() != tt.expectedError.Error() {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPolicyServiceImpl_CheckPermission(t *testing.T) {
	svc, _ := createPolicyServiceForTest(t)

	allowed, err := svc.CheckPermission("role_customer", "/order", "POST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("customer should be allowed to place orders")
	}

	allowed, err = svc.CheckPermission("role_customer", "/admin/policies", "GET")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Error("customer must not reach admin endpoints")
	}

	allowed, err = svc.CheckPermission("role_admin", "/admin/policies", "GET")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("admin should reach admin endpoints")
	}
}

func TestPolicyServiceImpl_RemovePolicy(t *testing.T) {
	svc, _ := createPolicyServiceForTest(t)

	if err := svc.AddPolicy("role_customer", "/coupon", "GET"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.RemovePolicy("role_customer", "/coupon", "GET"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, policy := range svc.GetPolicies() {
		if len(policy) == 3 && policy[0] == "role_customer" && policy[1] == "/coupon" {
			t.Error("removed policy still present")
		}
	}
}

func TestPolicyServiceImpl_EnsureDefaultPolicies(t *testing.T) {
	t.Run("seeds an empty deployment", func(t *testing.T) {
		svc, enforcer := createPolicyServiceForTest(t)
		enforcer.SetPolicies(nil)
		saved := false
		enforcer.SavePolicyFunc = func() error {
			saved = true
			return nil
		}

		if err := svc.EnsureDefaultPolicies(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !saved {
			t.Error("expected the seeded table to be persisted")
		}

		has := func(role, resource string) bool {
			for _, p := range svc.GetPolicies() {
				if len(p) == 3 && p[0] == role && p[1] == resource {
					return true
				}
			}
			return false
		}
		if !has(AdminPolicyRole, "/admin/*") {
			t.Error("expected the admin wildcard rule")
		}
		// exact and wildcard rows must both be present
		for _, role := range []string{CustomerPolicyRole, AdminPolicyRole} {
			if !has(role, "/order") || !has(role, "/order/*") {
				t.Errorf("expected exact and wildcard order rules for %s", role)
			}
		}
	})

	t.Run("no-op when any policy exists", func(t *testing.T) {
		svc, enforcer := createPolicyServiceForTest(t)
		enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
			t.Error("seeding must not run on a populated table")
			return false, nil
		}
		enforcer.SavePolicyFunc = func() error {
			t.Error("nothing to persist on a populated table")
			return nil
		}

		if err := svc.EnsureDefaultPolicies(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
