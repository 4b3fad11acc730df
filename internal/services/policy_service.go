package services

import (
	"github.com/casbin/casbin/v2"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// Casbin subjects carried by the two customer roles. Route patterns are
// seeded as exact and wildcard pairs: keyMatch treats "/order/*" as a
// strict prefix, so it never covers "/order" itself.
const (
	CustomerPolicyRole = "role_customer"
	AdminPolicyRole    = "role_admin"
)

// customerRoutePolicies is the route table granted to every customer,
// admins included.
var customerRoutePolicies = [][2]string{
	{"/customer", "PUT"},
	{"/customer/password", "PUT"},
	{"/address", "POST"},
	{"/address/*", "(GET|DELETE)"},
	{"/states", "GET"},
	{"/restaurant/*", "PUT"},
	{"/order", "(GET|POST)"},
	{"/order/*", "GET"},
}

// CasbinEnforcerWrapper wraps the real Casbin enforcer to implement our interface
type CasbinEnforcerWrapper struct {
	enforcer *casbin.Enforcer
}

// NewCasbinEnforcerWrapper creates a wrapper for the real Casbin enforcer
func NewCasbinEnforcerWrapper(enforcer *casbin.Enforcer) domain.CasbinEnforcer {
	return &CasbinEnforcerWrapper{enforcer: enforcer}
}

func (w *CasbinEnforcerWrapper) AddPolicy(params ...interface{}) (bool, error) {
	return w.enforcer.AddPolicy(params...)
}

func (w *CasbinEnforcerWrapper) RemovePolicy(params ...interface{}) (bool, error) {
	return w.enforcer.RemovePolicy(params...)
}

func (w *CasbinEnforcerWrapper) Enforce(rvals ...interface{}) (bool, error) {
	return w.enforcer.Enforce(rvals...)
}

func (w *CasbinEnforcerWrapper) GetPolicy() ([][]string, error) {
	return w.enforcer.GetPolicy()
}

func (w *CasbinEnforcerWrapper) SavePolicy() error {
	return w.enforcer.SavePolicy()
}

// PolicyServiceImpl implements domain.PolicyService using Casbin
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a new policy service
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: NewCasbinEnforcerWrapper(enforcer),
	}
}

// NewPolicyServiceWithEnforcer creates a new policy service with a CasbinEnforcer interface (for testing)
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: enforcer,
	}
}

// AddPolicy implements domain.PolicyService
func (p *PolicyServiceImpl) AddPolicy(role, resource, action string) error {
	_, err := p.enforcer.AddPolicy(role, resource, action)
	if err != nil {
		return err
	}
	return p.enforcer.SavePolicy()
}

// RemovePolicy implements domain.PolicyService
func (p *PolicyServiceImpl) RemovePolicy(role, resource, action string) error {
	_, err := p.enforcer.RemovePolicy(role, resource, action)
	if err != nil {
		return err
	}
	return p.enforcer.SavePolicy()
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(role, resource, action)
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() [][]string {
	policies, _ := p.enforcer.GetPolicy()
	return policies
}

// EnsureDefaultPolicies implements domain.PolicyService. It installs the
// default RBAC table on an empty deployment and is a no-op once any
// policy exists.
func (p *PolicyServiceImpl) EnsureDefaultPolicies() error {
	existing, err := p.enforcer.GetPolicy()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	if _, err := p.enforcer.AddPolicy(AdminPolicyRole, "/admin/*", "(GET|POST|PUT|DELETE)"); err != nil {
		return err
	}
	for _, role := range []string{CustomerPolicyRole, AdminPolicyRole} {
		for _, route := range customerRoutePolicies {
			if _, err := p.enforcer.AddPolicy(role, route[0], route[1]); err != nil {
				return err
			}
		}
	}
	return p.enforcer.SavePolicy()
}
