package mocks

import "github.com/Sehbaz/foodOrderingAppBackAPI/domain"

// MockCasbinEnforcer implements the CasbinEnforcer interface for testing
type MockCasbinEnforcer struct {
	AddPolicyFunc    func(params ...interface{}) (bool, error)
	RemovePolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc      func(rvals ...interface{}) (bool, error)
	GetPolicyFunc    func() ([][]string, error)
	SavePolicyFunc   func() error
	policies         [][]string
}

// Compile-time interface compliance verification
var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)

// NewMockCasbinEnforcer creates a new MockCasbinEnforcer with default behaviors
func NewMockCasbinEnforcer() *MockCasbinEnforcer {
	return &MockCasbinEnforcer{
		policies: [][]string{
			{"role_admin", "/admin/*", "GET|POST|PUT|DELETE"},
			{"role_customer", "/customer", "PUT"},
			{"role_customer", "/customer/password", "PUT"},
			{"role_customer", "/address", "POST"},
			{"role_customer", "/address/*", "GET|DELETE"},
			{"role_customer", "/states", "GET"},
			{"role_customer", "/restaurant/*", "PUT"},
			{"role_customer", "/order", "GET|POST"},
			{"role_customer", "/order/*", "GET"},
		},
	}
}

// AddPolicy adds a new policy rule
func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}

	// Default behavior: add to internal policies list
	if len(params) >= 3 {
		policy := make([]string, len(params))
		for i, param := range params {
			if str, ok := param.(string); ok {
				policy[i] = str
			}
		}
		m.policies = append(m.policies, policy)
		return true, nil
	}
	return false, nil
}

// RemovePolicy removes a policy rule
func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(params...)
	}

	// Default behavior: remove from internal policies list
	if len(params) >= 3 {
		target := make([]string, len(params))
		for i, param := range params {
			if str, ok := param.(string); ok {
				target[i] = str
			}
		}

		for i, policy := range m.policies {
			if len(policy) != len(target) {
				continue
			}
			match := true
			for j, val := range policy {
				if val != target[j] {
					match = false
					break
				}
			}
			if match {
				m.policies = append(m.policies[:i], m.policies[i+1:]...)
				return true, nil
			}
		}
	}
	return false, nil
}

// Enforce checks if a request should be allowed
func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}

	// Default behavior: admins pass, everyone else matches stored policies
	if len(rvals) >= 3 {
		role, ok1 := rvals[0].(string)
		resource, ok2 := rvals[1].(string)
		action, ok3 := rvals[2].(string)
		if ok1 && ok2 && ok3 {
			if role == "role_admin" {
				return true, nil
			}
			for _, policy := range m.policies {
				if len(policy) < 3 || policy[0] != role {
					continue
				}
				if !resourceMatches(policy[1], resource) {
					continue
				}
				if actionMatches(policy[2], action) {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

func resourceMatches(pattern, resource string) bool {
	if pattern == resource || pattern == "/*" {
		return true
	}
	if len(pattern) > 1 && pattern[len(pattern)-1] == '*' {
		prefix := pattern[:len(pattern)-1]
		return len(resource) >= len(prefix) && resource[:len(prefix)] == prefix
	}
	return false
}

func actionMatches(pattern, action string) bool {
	if pattern == action || pattern == "*" {
		return true
	}
	for start := 0; start < len(pattern); {
		end := start
		for end < len(pattern) && pattern[end] != '|' {
			end++
		}
		if pattern[start:end] == action {
			return true
		}
		start = end + 1
	}
	return false
}

// GetPolicy returns all policies
func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	// Return copy of internal policies
	result := make([][]string, len(m.policies))
	for i, policy := range m.policies {
		result[i] = make([]string, len(policy))
		copy(result[i], policy)
	}
	return result, nil
}

// SavePolicy saves all policies
func (m *MockCasbinEnforcer) SavePolicy() error {
	if m.SavePolicyFunc != nil {
		return m.SavePolicyFunc()
	}
	// Default behavior: success
	return nil
}

// SetPolicies sets the internal policies (test helper)
func (m *MockCasbinEnforcer) SetPolicies(policies [][]string) {
	m.policies = make([][]string, len(policies))
	for i, policy := range policies {
		m.policies[i] = make([]string, len(policy))
		copy(m.policies[i], policy)
	}
}
