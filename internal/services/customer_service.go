package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/validation"
)

// CustomerServiceImpl implements domain.CustomerService. It owns the
// session lifecycle: every authenticated operation funnels through the
// resolveSession guard, which applies the not-logged-in, logged-out and
// expired checks in that order.
type CustomerServiceImpl struct {
	customerRepo domain.CustomerRepository
	sessionRepo  domain.SessionRepository
	sessionCache domain.SessionCache
	passwordSvc  domain.PasswordService
	tokenSvc     domain.TokenService
	sessionTTL   time.Duration
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo domain.CustomerRepository,
	sessionRepo domain.SessionRepository,
	sessionCache domain.SessionCache,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	sessionTTL time.Duration,
) domain.CustomerService {
	return &CustomerServiceImpl{
		customerRepo: customerRepo,
		sessionRepo:  sessionRepo,
		sessionCache: sessionCache,
		passwordSvc:  passwordSvc,
		tokenSvc:     tokenSvc,
		sessionTTL:   sessionTTL,
	}
}

// SignUp implements domain.CustomerService
func (s *CustomerServiceImpl) SignUp(ctx context.Context, customer *domain.Customer, password string) (*domain.Customer, error) {
	existing, err := s.customerRepo.FindByContactNumber(ctx, customer.ContactNumber)
	if err == nil && existing != nil {
		return nil, domain.ErrContactRegistered
	}

	if customer.ContactNumber == "" || customer.Email == "" || customer.FirstName == "" || password == "" {
		return nil, domain.ErrFieldsMissing
	}
	if !validation.IsValidEmail(customer.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if !validation.IsValidContactNumber(customer.ContactNumber) {
		return nil, domain.ErrInvalidContact
	}
	if !validation.IsValidPassword(password) {
		return nil, domain.ErrWeakPassword
	}

	salt, err := s.passwordSvc.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	if customer.UUID == "" {
		customer.UUID = uuid.NewString()
	}
	if customer.Role == "" {
		customer.Role = "customer"
	}
	customer.Salt = salt
	customer.PasswordHash = s.passwordSvc.Hash(password, salt)

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// Authenticate implements domain.CustomerService. Every successful call
// appends one session row; concurrently active sessions per customer are
// unbounded, so multi-device login just works.
func (s *CustomerServiceImpl) Authenticate(ctx context.Context, contactNumber, password string) (*domain.AuthResult, error) {
	customer, err := s.customerRepo.FindByContactNumber(ctx, contactNumber)
	if err != nil {
		if err == domain.ErrCustomerNotRegistered {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	if !s.passwordSvc.Matches(password, customer.Salt, customer.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.sessionTTL)

	accessToken, err := s.tokenSvc.IssueToken(customer.UUID, now, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	session := &domain.CustomerSession{
		UUID:        uuid.NewString(),
		AccessToken: accessToken,
		CustomerID:  customer.ID,
		Customer:    customer,
		LoginAt:     now,
		ExpiresAt:   expiresAt,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.cacheSession(ctx, session)

	return &domain.AuthResult{
		Customer:    customer,
		Session:     session,
		AccessToken: accessToken,
	}, nil
}

// cacheSession writes a credential-free copy of the session to the
// lookaside cache. Cache failures only cost the fast path.
func (s *CustomerServiceImpl) cacheSession(ctx context.Context, session *domain.CustomerSession) {
	cached := *session
	cached.Customer = nil
	if err := s.sessionCache.Put(ctx, &cached); err != nil {
		log.Printf("session cache put failed: %v", err)
	}
}

// resolveSession is the single authorization guard. Check order is
// fixed: unknown token, then logged out, then expired. The returned
// session always carries its customer.
func (s *CustomerServiceImpl) resolveSession(ctx context.Context, accessToken string) (*domain.CustomerSession, error) {
	session, hit, err := s.sessionCache.Get(ctx, accessToken)
	if err != nil {
		log.Printf("session cache get failed: %v", err)
		hit = false
	}
	if !hit {
		session, err = s.sessionRepo.FindByAccessToken(ctx, accessToken)
		if err != nil {
			return nil, err
		}
	}

	if session.LoggedOut() {
		return nil, domain.ErrLoggedOut
	}
	if session.Expired(time.Now()) {
		return nil, domain.ErrSessionExpired
	}

	if session.Customer == nil {
		customer, err := s.customerRepo.FindByID(ctx, session.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load session customer: %w", err)
		}
		session.Customer = customer
	}

	if !hit {
		s.cacheSession(ctx, session)
	}
	return session, nil
}

// GetCustomer implements domain.CustomerService
func (s *CustomerServiceImpl) GetCustomer(ctx context.Context, accessToken string) (*domain.Customer, error) {
	session, err := s.resolveSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return session.Customer, nil
}

// Logout implements domain.CustomerService. Logging out twice fails the
// second time: invalidation is deliberately not idempotent.
func (s *CustomerServiceImpl) Logout(ctx context.Context, accessToken string) (*domain.CustomerSession, error) {
	session, err := s.resolveSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	// evict before stamping so the cache cannot serve the session while
	// the stamp is in flight
	if err := s.sessionCache.Evict(ctx, accessToken); err != nil {
		return nil, fmt.Errorf("failed to evict session from cache: %w", err)
	}

	now := time.Now()
	if err := s.sessionRepo.StampLogout(ctx, accessToken, now); err != nil {
		return nil, err
	}

	// a resolve running between the first eviction and the stamp can
	// refill the cache from the still-active row; evict again so no
	// pre-stamp entry survives the logout
	if err := s.sessionCache.Evict(ctx, accessToken); err != nil {
		log.Printf("post-logout cache evict failed: %v", err)
	}

	session.LogoutAt = &now
	return session, nil
}

// UpdateDetails implements domain.CustomerService
func (s *CustomerServiceImpl) UpdateDetails(ctx context.Context, accessToken, firstName, lastName string) (*domain.Customer, error) {
	session, err := s.resolveSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if firstName == "" {
		return nil, domain.ErrFirstNameEmpty
	}

	customer := session.Customer
	customer.FirstName = firstName
	customer.LastName = lastName
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// ChangePassword implements domain.CustomerService. Checks run in a
// fixed order: session guard, weak new password, wrong old password.
// Nothing is persisted before every check passes.
func (s *CustomerServiceImpl) ChangePassword(ctx context.Context, accessToken, oldPassword, newPassword string) (*domain.Customer, error) {
	if oldPassword == "" || newPassword == "" {
		return nil, domain.ErrPasswordFieldsEmpty
	}

	session, err := s.resolveSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if !validation.IsValidPassword(newPassword) {
		return nil, domain.ErrWeakPassword
	}

	customer := session.Customer
	if !s.passwordSvc.Matches(oldPassword, customer.Salt, customer.PasswordHash) {
		return nil, domain.ErrIncorrectOldPassword
	}

	salt, err := s.passwordSvc.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	customer.Salt = salt
	customer.PasswordHash = s.passwordSvc.Hash(newPassword, salt)

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}
	return customer, nil
}
