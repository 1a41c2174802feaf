package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testTTL = 5 * time.Minute

// cacheHit makes a Cache.Get mock decode value into dest, the way Redis would.
func cacheHit(value any) func(ctx context.Context, key string, dest any) (bool, error) {
	return func(_ context.Context, _ string, dest any) (bool, error) {
		data, err := json.Marshal(value)
		if err != nil {
			return false, err
		}
		return true, json.Unmarshal(data, dest)
	}
}

func TestCacheKeys(t *testing.T) {
	id := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	status := models.DebtStatusPending

	assert.Equal(t, "user:7c9e6679-7425-40de-944b-e07fc1f90ae7", userKey(id))
	assert.Equal(t, "debt:7c9e6679-7425-40de-944b-e07fc1f90ae7", debtKey(id))
	assert.Equal(t, "debt-summary:7c9e6679-7425-40de-944b-e07fc1f90ae7", summaryKey(id))
	assert.Equal(t, "debts:all:{}", debtsAllKey(models.DebtFilter{}))
	assert.Equal(t,
		`debts:all:{"debtorId":"7c9e6679-7425-40de-944b-e07fc1f90ae7","status":"PENDING"}`,
		debtsAllKey(models.DebtFilter{DebtorID: &id, Status: &status}),
	)
}

func TestCacheLookup(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := NewMockCache(ctrl)

	cache.EXPECT().Get(ctx, "k", gomock.Any()).DoAndReturn(cacheHit("v"))
	var hit string
	assert.True(t, cacheLookup(ctx, cache, "k", &hit))
	assert.Equal(t, "v", hit)

	cache.EXPECT().Get(ctx, "k", gomock.Any()).Return(false, nil)
	var miss string
	assert.False(t, cacheLookup(ctx, cache, "k", &miss))

	cache.EXPECT().Get(ctx, "k", gomock.Any()).Return(false, errors.New("connection refused"))
	var failed string
	assert.False(t, cacheLookup(ctx, cache, "k", &failed))
}

func TestCacheStore_IgnoresErrors(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := NewMockCache(ctrl)
	cache.EXPECT().Set(ctx, "k", "v", testTTL).Return(errors.New("connection refused"))

	assert.NotPanics(t, func() { cacheStore(ctx, cache, "k", "v", testTTL) })
}
