// Package userdb implements UserStore using BadgerHold.
// It persists user accounts and their investment records.
package userdb

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/interfaces"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

// Store implements interfaces.UserStore using BadgerHold.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore creates a new UserStore backed by BadgerHold.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create userdb path %s: %w", path, err)
	}
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil
	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open userdb at %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("UserDB opened")
	return &Store{db: db, logger: logger}, nil
}

// CreateUser stores a new user. The mobile number must be unique; a
// duplicate fails without writing.
func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	var existing []models.User
	if err := s.db.Find(&existing, badgerhold.Where("Mobile").Eq(user.Mobile)); err != nil {
		return fmt.Errorf("failed to check mobile uniqueness: %w", err)
	}
	if len(existing) > 0 {
		return fmt.Errorf("mobile number '%s' already registered", user.Mobile)
	}

	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = "client"
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if err := s.db.Insert(user.UserID, user); err != nil {
		return fmt.Errorf("failed to create user '%s': %w", user.Name, err)
	}

	s.logger.Info().Str("user_id", user.UserID).Str("mobile", user.Mobile).Msg("User created")
	return nil
}

// GetUser retrieves a user by ID
func (s *Store) GetUser(_ context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Get(userID, &user); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("user '%s' not found", userID)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", userID, err)
	}
	return &user, nil
}

// GetUserByMobile retrieves a user by mobile number
func (s *Store) GetUserByMobile(_ context.Context, mobile string) (*models.User, error) {
	var users []models.User
	if err := s.db.Find(&users, badgerhold.Where("Mobile").Eq(mobile)); err != nil {
		return nil, fmt.Errorf("failed to find user by mobile: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("no user registered with mobile '%s'", mobile)
	}
	return &users[0], nil
}

// ListClients returns all client users, newest first
func (s *Store) ListClients(_ context.Context) ([]*models.User, error) {
	var users []models.User
	if err := s.db.Find(&users, badgerhold.Where("Role").Eq("client")); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	result := make([]*models.User, len(users))
	for i := range users {
		result[i] = &users[i]
	}
	return result, nil
}

// DeleteUser removes a user and all their investments
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	if err := s.db.Delete(userID, models.User{}); err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete user '%s': %w", userID, err)
	}

	if err := s.db.DeleteMatching(models.Investment{}, badgerhold.Where("UserID").Eq(userID)); err != nil {
		return fmt.Errorf("failed to delete investments for user '%s': %w", userID, err)
	}

	s.logger.Info().Str("user_id", userID).Msg("User deleted")
	return nil
}

// AddInvestment stores a new investment record
func (s *Store) AddInvestment(_ context.Context, inv *models.Investment) error {
	if inv.InvestmentID == "" {
		inv.InvestmentID = uuid.New().String()
	}
	if inv.DateAdded.IsZero() {
		inv.DateAdded = time.Now()
	}

	if err := s.db.Insert(inv.InvestmentID, inv); err != nil {
		return fmt.Errorf("failed to add investment '%s': %w", inv.InstrumentName, err)
	}

	s.logger.Info().
		Str("investment_id", inv.InvestmentID).
		Str("user_id", inv.UserID).
		Str("identifier", inv.Identifier).
		Msg("Investment added")
	return nil
}

// GetInvestment retrieves an investment by ID
func (s *Store) GetInvestment(_ context.Context, investmentID string) (*models.Investment, error) {
	var inv models.Investment
	if err := s.db.Get(investmentID, &inv); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("investment '%s' not found", investmentID)
		}
		return nil, fmt.Errorf("failed to get investment '%s': %w", investmentID, err)
	}
	return &inv, nil
}

// ListInvestments returns a user's investments, newest first
func (s *Store) ListInvestments(_ context.Context, userID string) ([]*models.Investment, error) {
	var invs []models.Investment
	if err := s.db.Find(&invs, badgerhold.Where("UserID").Eq(userID)); err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	sort.Slice(invs, func(i, j int) bool {
		return invs[i].DateAdded.After(invs[j].DateAdded)
	})

	result := make([]*models.Investment, len(invs))
	for i := range invs {
		result[i] = &invs[i]
	}
	return result, nil
}

// DeleteInvestment removes an investment by ID
func (s *Store) DeleteInvestment(_ context.Context, investmentID string) error {
	if err := s.db.Delete(investmentID, models.Investment{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return fmt.Errorf("investment '%s' not found", investmentID)
		}
		return fmt.Errorf("failed to delete investment '%s': %w", investmentID, err)
	}
	return nil
}

// Close shuts down the BadgerHold database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ensure Store implements UserStore
var _ interfaces.UserStore = (*Store)(nil)
