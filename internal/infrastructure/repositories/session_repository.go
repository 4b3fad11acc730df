package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using GORM.
// The session table is append-only login history: rows are created on
// login and mutated exactly once, to stamp logout_at.
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// DBCustomerSession represents the database model for CustomerSession
type DBCustomerSession struct {
	ID          uint       `gorm:"primaryKey"`
	UUID        string     `gorm:"uniqueIndex;size:200;not null"`
	AccessToken string     `gorm:"uniqueIndex;size:500;not null"`
	CustomerID  uint       `gorm:"index;not null"`
	Customer    DBCustomer `gorm:"foreignKey:CustomerID"`
	LoginAt     time.Time  `gorm:"index;not null"`
	ExpiresAt   time.Time  `gorm:"index;not null"`
	LogoutAt    *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBCustomerSession) TableName() string {
	return "customer_sessions"
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.CustomerSession) error {
	dbSession := sessionToDB(session)
	if err := r.db.WithContext(ctx).Create(dbSession).Error; err != nil {
		return err
	}
	session.ID = dbSession.ID
	return nil
}

// FindByAccessToken implements domain.SessionRepository
func (r *SessionRepositoryImpl) FindByAccessToken(ctx context.Context, accessToken string) (*domain.CustomerSession, error) {
	var dbSession DBCustomerSession
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("access_token = ?", accessToken).
		First(&dbSession).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotLoggedIn
		}
		return nil, err
	}
	return sessionToDomain(&dbSession), nil
}

// StampLogout implements domain.SessionRepository. The update is guarded
// on logout_at IS NULL, so a concurrent logout for the same token makes
// exactly one of the two calls win; the loser sees the terminal state.
func (r *SessionRepositoryImpl) StampLogout(ctx context.Context, accessToken string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&DBCustomerSession{}).
		Where("access_token = ? AND logout_at IS NULL", accessToken).
		Update("logout_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&DBCustomerSession{}).
			Where("access_token = ?", accessToken).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotLoggedIn
		}
		return domain.ErrLoggedOut
	}
	return nil
}

// sessionToDB converts a domain session to the database model
func sessionToDB(session *domain.CustomerSession) *DBCustomerSession {
	return &DBCustomerSession{
		ID:          session.ID,
		UUID:        session.UUID,
		AccessToken: session.AccessToken,
		CustomerID:  session.CustomerID,
		LoginAt:     session.LoginAt,
		ExpiresAt:   session.ExpiresAt,
		LogoutAt:    session.LogoutAt,
	}
}

// sessionToDomain converts a database session to the domain model
func sessionToDomain(dbSession *DBCustomerSession) *domain.CustomerSession {
	session := &domain.CustomerSession{
		ID:          dbSession.ID,
		UUID:        dbSession.UUID,
		AccessToken: dbSession.AccessToken,
		CustomerID:  dbSession.CustomerID,
		LoginAt:     dbSession.LoginAt,
		ExpiresAt:   dbSession.ExpiresAt,
		LogoutAt:    dbSession.LogoutAt,
	}
	if dbSession.Customer.ID != 0 {
		session.Customer = customerToDomain(&dbSession.Customer)
	}
	return session
}
