package interfaces

import (
	"context"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// UserStore persists user accounts and their investments.
type UserStore interface {
	// CreateUser stores a new user. Fails when the mobile number is already
	// registered.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// GetUserByMobile retrieves a user by mobile number
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)

	// ListClients returns all client users, newest first
	ListClients(ctx context.Context) ([]*models.User, error)

	// DeleteUser removes a user and all their investments
	DeleteUser(ctx context.Context, userID string) error

	// AddInvestment stores a new investment record
	AddInvestment(ctx context.Context, inv *models.Investment) error

	// GetInvestment retrieves an investment by ID
	GetInvestment(ctx context.Context, investmentID string) (*models.Investment, error)

	// ListInvestments returns a user's investments, newest first
	ListInvestments(ctx context.Context, userID string) ([]*models.Investment, error)

	// DeleteInvestment removes an investment by ID
	DeleteInvestment(ctx context.Context, investmentID string) error

	// Close releases the underlying database
	Close() error
}
