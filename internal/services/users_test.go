package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/Henry18/mvp-debts/internal/txhooks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userMocks struct {
	reader *MockUserReader
	writer *MockUserWriter
	debts  *MockDebtCounter
	cache  *MockCache
}

func newUserService(t *testing.T) (*UserService, userMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := userMocks{
		reader: NewMockUserReader(ctrl),
		writer: NewMockUserWriter(ctrl),
		debts:  NewMockDebtCounter(ctrl),
		cache:  NewMockCache(ctrl),
	}
	return NewUserService(m.reader, m.writer, m.debts, m.cache, testTTL), m
}

func strPtr(s string) *string { return &s }

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	svc, m := newUserService(t)

	created := &models.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", IsActive: true}

	m.reader.EXPECT().GetByEmail(ctx, "ana@example.com").Return(nil, nil)
	m.writer.EXPECT().
		Save(ctx, "ana@example.com", gomock.Any(), "Ana", gomock.Nil()).
		DoAndReturn(func(_ context.Context, _, hash, _ string, _ *string) (*models.User, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
			return created, nil
		})
	m.cache.EXPECT().Delete(ctx, userKey(created.ID), usersAllKey).Return(nil)

	user, err := svc.Create(ctx, models.CreateUserInput{Email: "ana@example.com", Password: "secret1", Name: "Ana"})

	require.NoError(t, err)
	assert.Equal(t, created, user)
}

func TestUserService_Create_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		in      models.CreateUserInput
		wantMsg string
	}{
		{
			name:    "malformed email",
			in:      models.CreateUserInput{Email: "not-an-email", Password: "secret1", Name: "Ana"},
			wantMsg: MsgInvalidEmail,
		},
		{
			name:    "email with display name",
			in:      models.CreateUserInput{Email: "Ana <ana@example.com>", Password: "secret1", Name: "Ana"},
			wantMsg: MsgInvalidEmail,
		},
		{
			name:    "short password",
			in:      models.CreateUserInput{Email: "ana@example.com", Password: "12345", Name: "Ana"},
			wantMsg: MsgPasswordTooShort,
		},
		{
			name:    "blank name",
			in:      models.CreateUserInput{Email: "ana@example.com", Password: "secret1", Name: "   "},
			wantMsg: MsgNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserService(t)

			user, err := svc.Create(ctx, tt.in)

			assert.Nil(t, user)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, m := newUserService(t)

	m.reader.EXPECT().GetByEmail(ctx, "ana@example.com").Return(&models.User{ID: uuid.New()}, nil)

	_, err := svc.Create(ctx, models.CreateUserInput{Email: "ana@example.com", Password: "secret1", Name: "Ana"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgEmailTaken, vErr.Message)
}

func TestUserService_Create_StoreError(t *testing.T) {
	ctx := context.Background()
	svc, m := newUserService(t)

	m.reader.EXPECT().GetByEmail(ctx, "ana@example.com").Return(nil, nil)
	m.writer.EXPECT().Save(ctx, "ana@example.com", gomock.Any(), "Ana", gomock.Any()).Return(nil, errors.New("db error"))

	_, err := svc.Create(ctx, models.CreateUserInput{
		Email: "ana@example.com", Password: "secret1", Name: "Ana", Phone: strPtr("+34 600"),
	})

	assert.EqualError(t, err, "db error")
}

func TestUserService_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	stored := &models.User{ID: id, Email: "ana@example.com", Name: "Ana", IsActive: true}

	t.Run("cache hit skips the store", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).DoAndReturn(cacheHit(stored))

		user, err := svc.FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, stored.Email, user.Email)
	})

	t.Run("cache miss reads and stores", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).Return(false, nil)
		m.reader.EXPECT().GetByID(ctx, id).Return(stored, nil)
		m.cache.EXPECT().Set(ctx, userKey(id), stored, testTTL).Return(nil)

		user, err := svc.FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("cache failure is a miss", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).Return(false, errors.New("connection refused"))
		m.reader.EXPECT().GetByID(ctx, id).Return(stored, nil)
		m.cache.EXPECT().Set(ctx, userKey(id), stored, testTTL).Return(errors.New("connection refused"))

		user, err := svc.FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).Return(false, nil)
		m.reader.EXPECT().GetByID(ctx, id).Return(nil, nil)

		_, err := svc.FindByID(ctx, id)

		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "Usuario con ID "+id.String()+" no encontrado", nfErr.Message)
	})
}

func TestUserService_FindByEmail(t *testing.T) {
	ctx := context.Background()
	svc, m := newUserService(t)

	m.reader.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, nil)

	user, err := svc.FindByEmail(ctx, "nobody@example.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()
	users := []models.User{{ID: uuid.New(), Name: "Ana"}, {ID: uuid.New(), Name: "Luis"}}

	t.Run("hit", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, usersAllKey, gomock.Any()).DoAndReturn(cacheHit(users))

		got, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("miss", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, usersAllKey, gomock.Any()).Return(false, nil)
		m.reader.EXPECT().List(ctx).Return(users, nil)
		m.cache.EXPECT().Set(ctx, usersAllKey, users, testTTL).Return(nil)

		got, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, users, got)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	current := &models.User{ID: id, Email: "ana@example.com", Name: "Ana", IsActive: true}

	t.Run("rehashes password and invalidates only the user keys", func(t *testing.T) {
		svc, m := newUserService(t)
		updated := &models.User{ID: id, Email: "ana@example.com", Name: "Ana María", IsActive: true}

		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).DoAndReturn(cacheHit(current))
		m.writer.EXPECT().Update(ctx, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in models.UpdateUserInput) (*models.User, error) {
				require.NotNil(t, in.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*in.Password), []byte("newsecret")))
				assert.Equal(t, "Ana María", *in.Name)
				return updated, nil
			})
		m.cache.EXPECT().Delete(ctx, userKey(id), usersAllKey).Return(nil)

		user, err := svc.Update(ctx, id, models.UpdateUserInput{Name: strPtr("Ana María"), Password: strPtr("newsecret")})

		require.NoError(t, err)
		assert.Equal(t, updated, user)
	})

	t.Run("email owned by someone else", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).DoAndReturn(cacheHit(current))
		m.reader.EXPECT().GetByEmail(ctx, "luis@example.com").Return(&models.User{ID: uuid.New()}, nil)

		_, err := svc.Update(ctx, id, models.UpdateUserInput{Email: strPtr("luis@example.com")})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, MsgEmailTaken, vErr.Message)
	})

	t.Run("short password", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).DoAndReturn(cacheHit(current))

		_, err := svc.Update(ctx, id, models.UpdateUserInput{Password: strPtr("123")})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, MsgPasswordTooShort, vErr.Message)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).Return(false, nil)
		m.reader.EXPECT().GetByID(ctx, id).Return(nil, nil)

		_, err := svc.Update(ctx, id, models.UpdateUserInput{Name: strPtr("Ana")})

		var nfErr *NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestUserService_Remove(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	current := &models.User{ID: id, Email: "ana@example.com", Name: "Ana", IsActive: true}

	t.Run("success", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).DoAndReturn(cacheHit(current))
		m.debts.EXPECT().CountByUser(ctx, id).Return(0, nil)
		m.writer.EXPECT().Delete(ctx, id).Return(nil)
		m.cache.EXPECT().Delete(ctx, userKey(id), usersAllKey).Return(nil)

		ok, err := svc.Remove(ctx, id)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("referenced by debts", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).DoAndReturn(cacheHit(current))
		m.debts.EXPECT().CountByUser(ctx, id).Return(2, nil)

		ok, err := svc.Remove(ctx, id)

		assert.False(t, ok)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, MsgUserHasDebts, vErr.Message)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, m := newUserService(t)
		m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).Return(false, nil)
		m.reader.EXPECT().GetByID(ctx, id).Return(nil, nil)

		ok, err := svc.Remove(ctx, id)

		assert.False(t, ok)
		var nfErr *NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestUserService_Create_ConcurrentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, m := newUserService(t)

	m.reader.EXPECT().GetByEmail(ctx, "ana@example.com").Return(nil, nil)
	m.writer.EXPECT().
		Save(ctx, "ana@example.com", gomock.Any(), "Ana", gomock.Nil()).
		Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	user, err := svc.Create(ctx, models.CreateUserInput{Email: "ana@example.com", Password: "secret1", Name: "Ana"})

	assert.Nil(t, user)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgEmailTaken, vErr.Message)
}

func TestUserService_Update_ConcurrentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, m := newUserService(t)
	id := uuid.New()
	current := &models.User{ID: id, Email: "ana@example.com", Name: "Ana", IsActive: true}

	m.cache.EXPECT().Get(ctx, userKey(id), gomock.Any()).DoAndReturn(cacheHit(current))
	m.reader.EXPECT().GetByEmail(ctx, "luis@example.com").Return(nil, nil)
	m.writer.EXPECT().Update(ctx, id, gomock.Any()).Return(nil, fmt.Errorf("update user: %w", &pgconn.PgError{Code: "23505"}))

	_, err := svc.Update(ctx, id, models.UpdateUserInput{Email: strPtr("luis@example.com")})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgEmailTaken, vErr.Message)
}

func TestUserService_Create_InvalidatesAfterCommit(t *testing.T) {
	ctx, hooks := txhooks.WithHooks(context.Background())
	svc, m := newUserService(t)

	created := &models.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", IsActive: true}

	m.reader.EXPECT().GetByEmail(ctx, "ana@example.com").Return(nil, nil)
	m.writer.EXPECT().Save(ctx, "ana@example.com", gomock.Any(), "Ana", gomock.Nil()).Return(created, nil)

	_, err := svc.Create(ctx, models.CreateUserInput{Email: "ana@example.com", Password: "secret1", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, 1, hooks.Len())

	m.cache.EXPECT().Delete(gomock.Any(), userKey(created.ID), usersAllKey).Return(nil)
	hooks.Run(context.Background())
}
