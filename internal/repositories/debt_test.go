package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebtRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db, nil)
	readRepo := NewDebtReadRepository(db, nil)
	writeRepo := NewDebtWriteRepository(db, nil)

	ana, err := users.Save(ctx, "ana@example.com", "h", "Ana", nil)
	require.NoError(t, err)
	luis, err := users.Save(ctx, "luis@example.com", "h", "Luis", nil)
	require.NoError(t, err)

	firstID, err := writeRepo.Save(ctx, models.CreateDebtInput{
		Description: "Cena",
		Amount:      decimal.RequireFromString("10.50"),
		DebtorID:    ana.ID,
		CreditorID:  luis.ID,
	})
	require.NoError(t, err)

	secondID, err := writeRepo.Save(ctx, models.CreateDebtInput{
		Description: "Taxi",
		Amount:      decimal.NewFromInt(5),
		DebtorID:    luis.ID,
		CreditorID:  ana.ID,
	})
	require.NoError(t, err)

	t.Run("GetByIDResolvesParties", func(t *testing.T) {
		debt, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		require.NotNil(t, debt)
		assert.Equal(t, "Cena", debt.Description)
		assert.True(t, decimal.RequireFromString("10.5").Equal(debt.Amount))
		assert.Equal(t, models.DebtStatusPending, debt.Status)
		assert.Nil(t, debt.PaidAt)
		require.NotNil(t, debt.Debtor)
		require.NotNil(t, debt.Creditor)
		assert.Equal(t, "Ana", debt.Debtor.Name)
		assert.Equal(t, "luis@example.com", debt.Creditor.Email)
		assert.Empty(t, debt.Debtor.PasswordHash)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		debt, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, debt)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		debts, err := readRepo.List(ctx, models.DebtFilter{})
		assert.NoError(t, err)
		require.Len(t, debts, 2)
		assert.Equal(t, secondID, debts[0].ID)
		assert.Equal(t, firstID, debts[1].ID)
	})

	t.Run("ListFiltered", func(t *testing.T) {
		debts, err := readRepo.List(ctx, models.DebtFilter{DebtorID: &ana.ID})
		assert.NoError(t, err)
		require.Len(t, debts, 1)
		assert.Equal(t, firstID, debts[0].ID)

		paid := models.DebtStatusPaid
		debts, err = readRepo.List(ctx, models.DebtFilter{CreditorID: &ana.ID, Status: &paid})
		assert.NoError(t, err)
		assert.Empty(t, debts)
	})

	t.Run("ListByUser", func(t *testing.T) {
		debts, err := readRepo.ListByUser(ctx, ana.ID, nil)
		assert.NoError(t, err)
		assert.Len(t, debts, 2)

		count, err := readRepo.CountByUser(ctx, luis.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("UpdatePartial", func(t *testing.T) {
		amount := decimal.NewFromInt(12)
		err := writeRepo.Update(ctx, firstID, models.UpdateDebtInput{Amount: &amount})
		assert.NoError(t, err)

		debt, err := readRepo.GetByID(ctx, firstID)
		require.NoError(t, err)
		assert.True(t, amount.Equal(debt.Amount))
		assert.Equal(t, "Cena", debt.Description)
	})

	t.Run("MarkPaidOnce", func(t *testing.T) {
		assert.NoError(t, writeRepo.MarkPaid(ctx, secondID))
		assert.ErrorIs(t, writeRepo.MarkPaid(ctx, secondID), sql.ErrNoRows)

		debt, err := readRepo.GetByID(ctx, secondID)
		require.NoError(t, err)
		assert.Equal(t, models.DebtStatusPaid, debt.Status)
		require.NotNil(t, debt.PaidAt)
		assert.False(t, debt.PaidAt.Before(debt.CreatedAt))

		paid := models.DebtStatusPaid
		debts, err := readRepo.ListByUser(ctx, ana.ID, &paid)
		assert.NoError(t, err)
		assert.Len(t, debts, 1)
	})

	t.Run("PaidDebtIsFrozen", func(t *testing.T) {
		desc := "Otra"
		assert.ErrorIs(t, writeRepo.Update(ctx, secondID, models.UpdateDebtInput{Description: &desc}), sql.ErrNoRows)
		assert.ErrorIs(t, writeRepo.Delete(ctx, secondID), sql.ErrNoRows)
	})

	t.Run("UserDeletionRestricted", func(t *testing.T) {
		assert.Error(t, users.Delete(ctx, ana.ID))
	})

	t.Run("Delete", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, firstID))
		debt, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.Nil(t, debt)
	})

	t.Run("SameDebtorAndCreditorRejected", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, models.CreateDebtInput{
			Description: "Self",
			Amount:      decimal.NewFromInt(1),
			DebtorID:    ana.ID,
			CreditorID:  ana.ID,
		})
		assert.Error(t, err)
	})
}
