package userdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarbotrikbasu/Financial-Tracker/internal/common"
	"github.com/sarbotrikbasu/Financial-Tracker/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(common.NewSilentLogger(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCreateAndGetUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &models.User{
		Name:         "Asha Verma",
		Mobile:       "9876543210",
		PasswordHash: "hash",
	}
	require.NoError(t, store.CreateUser(ctx, user))
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "client", user.Role)

	got, err := store.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", got.Name)
	assert.Equal(t, "9876543210", got.Mobile)
}

func TestCreateUserDuplicateMobile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &models.User{Name: "First", Mobile: "9000000001"}))
	err := store.CreateUser(ctx, &models.User{Name: "Second", Mobile: "9000000001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestGetUserByMobile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &models.User{Name: "Ravi", Mobile: "9000000002"}))

	got, err := store.GetUserByMobile(ctx, "9000000002")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", got.Name)

	_, err = store.GetUserByMobile(ctx, "0000000000")
	assert.Error(t, err)
}

func TestListClientsExcludesAdmins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &models.User{Name: "Client A", Mobile: "9000000003"}))
	require.NoError(t, store.CreateUser(ctx, &models.User{Name: "Admin", Mobile: "9000000004", Role: "admin"}))

	clients, err := store.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Client A", clients[0].Name)
}

func TestInvestmentLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &models.User{Name: "Meera", Mobile: "9000000005"}
	require.NoError(t, store.CreateUser(ctx, user))

	older := &models.Investment{
		UserID:         user.UserID,
		InstrumentType: models.InstrumentTypeMutualFund,
		InstrumentName: "Axis Bluechip Fund",
		Identifier:     "120503",
		InvestedAmount: 10000,
		DateAdded:      time.Now().Add(-time.Hour),
	}
	newer := &models.Investment{
		UserID:         user.UserID,
		InstrumentType: models.InstrumentTypeStock,
		InstrumentName: "Reliance Industries",
		Identifier:     "RELIANCE.NS",
		InvestedAmount: 5000,
	}
	require.NoError(t, store.AddInvestment(ctx, older))
	require.NoError(t, store.AddInvestment(ctx, newer))

	invs, err := store.ListInvestments(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, invs, 2)
	assert.Equal(t, "RELIANCE.NS", invs[0].Identifier) // newest first
	assert.Equal(t, "120503", invs[1].Identifier)

	got, err := store.GetInvestment(ctx, older.InvestmentID)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, got.InvestedAmount)

	require.NoError(t, store.DeleteInvestment(ctx, older.InvestmentID))
	invs, err = store.ListInvestments(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, invs, 1)
}

func TestDeleteUserCascadesInvestments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &models.User{Name: "Karan", Mobile: "9000000006"}
	require.NoError(t, store.CreateUser(ctx, user))
	require.NoError(t, store.AddInvestment(ctx, &models.Investment{
		UserID:         user.UserID,
		InstrumentType: models.InstrumentTypeStock,
		InstrumentName: "TCS",
		Identifier:     "TCS.NS",
		InvestedAmount: 2500,
	}))

	require.NoError(t, store.DeleteUser(ctx, user.UserID))

	_, err := store.GetUser(ctx, user.UserID)
	assert.Error(t, err)

	invs, err := store.ListInvestments(ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, invs)
}
