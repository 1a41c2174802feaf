package main

import (
	"bytes"
	"context"
	"database/sql"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Henry18/mvp-debts/internal/config"
	"github.com/Henry18/mvp-debts/internal/jwt"
	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/Henry18/mvp-debts/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

// ------------------ Router ------------------

type routerFixture struct {
	router     http.Handler
	tokens     *jwt.JWT
	dbMock     sqlmock.Sqlmock
	userReader *services.MockUserReader
	debtReader *services.MockDebtReader
	debtWriter *services.MockDebtWriter
	cache      *services.MockCache
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db := sqlx.NewDb(sqlDB, "sqlmock")

	userReader := services.NewMockUserReader(ctrl)
	debtReader := services.NewMockDebtReader(ctrl)
	debtWriter := services.NewMockDebtWriter(ctrl)
	cache := services.NewMockCache(ctrl)
	tokens := jwt.New(jwt.WithSecretKey("testsecret"), jwt.WithExpiration(time.Minute))

	users := services.NewUserService(userReader, services.NewMockUserWriter(ctrl), services.NewMockDebtCounter(ctrl), cache, time.Minute)
	debts := services.NewDebtService(debtReader, debtWriter, users, cache, nil, time.Minute)

	router := newRouter(app{
		db:     db,
		tokens: tokens,
		auth:   services.NewAuthService(users, tokens),
		users:  users,
		debts:  debts,
	}, "http://localhost:8080/swagger/doc.json")

	return &routerFixture{
		router:     router,
		tokens:     tokens,
		dbMock:     dbMock,
		userReader: userReader,
		debtReader: debtReader,
		debtWriter: debtWriter,
		cache:      cache,
	}
}

func (f *routerFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/api/v1/users", "/api/v1/debts", "/api/v1/debts/summary", "/api/v1/debts/export/csv"} {
		rr := f.serve(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
		assert.JSONEq(t, `{"error":"No autorizado"}`, rr.Body.String(), path)
	}
}

func TestRouter_LoginUnknownEmail(t *testing.T) {
	f := newRouterFixture(t)
	f.userReader.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(`{"email":"ghost@example.com","password":"secret1"}`))
	rr := f.serve(req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Credenciales inválidas"}`, rr.Body.String())
}

func TestRouter_MeWithToken(t *testing.T) {
	f := newRouterFixture(t)
	user := &models.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", IsActive: true}

	token, err := f.tokens.Generate(context.Background(), user.ID, user.Email)
	require.NoError(t, err)

	f.cache.EXPECT().Get(gomock.Any(), "user:"+user.ID.String(), gomock.Any()).Return(false, nil)
	f.userReader.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	f.cache.EXPECT().Set(gomock.Any(), "user:"+user.ID.String(), user, time.Minute).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := f.serve(req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"email":"ana@example.com"`)
}

func TestRouter_CreateUserInvalidBodyRollsBack(t *testing.T) {
	f := newRouterFixture(t)
	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(`{`))
	rr := f.serve(req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestRouter_CreateDebtCommitFailure(t *testing.T) {
	f := newRouterFixture(t)
	debtor := &models.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", IsActive: true}
	creditor := &models.User{ID: uuid.New(), Email: "luis@example.com", Name: "Luis", IsActive: true}
	debtID := uuid.New()

	token, err := f.tokens.Generate(context.Background(), debtor.ID, debtor.Email)
	require.NoError(t, err)

	// User lookups miss the cache; Reset is never expected.
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.userReader.EXPECT().GetByID(gomock.Any(), debtor.ID).Return(debtor, nil).AnyTimes()
	f.userReader.EXPECT().GetByID(gomock.Any(), creditor.ID).Return(creditor, nil)

	f.dbMock.ExpectBegin()
	f.debtWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(debtID, nil)
	f.debtReader.EXPECT().GetByID(gomock.Any(), debtID).Return(&models.Debt{
		ID:         debtID,
		DebtorID:   debtor.ID,
		CreditorID: creditor.ID,
		Status:     models.DebtStatusPending,
		Debtor:     debtor,
		Creditor:   creditor,
	}, nil)
	f.dbMock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	body := `{"description":"Cena del viernes","amount":25.5,"debtorId":"` + debtor.ID.String() +
		`","creditorId":"` + creditor.ID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/debts", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := f.serve(req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Error interno del servidor"}`, rr.Body.String())
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newRouterFixture(t)

	rr := f.serve(httptest.NewRequest(http.MethodGet, "/api/v1/wallet/balance", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ------------------ Full integration test ------------------

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Config ------------------
	cfg := &config.Config{AppHost: "127.0.0.1", AppPort: "8086", LogLevel: "debug", CacheTTL: time.Minute}
	cfg.Postgres.Host = pgHost
	cfg.Postgres.Port = pgPort.Int()
	cfg.Postgres.User = "user"
	cfg.Postgres.Password = "password"
	cfg.Postgres.DB = "testdb"
	cfg.Postgres.MaxOpenConns = 5
	cfg.Postgres.MaxIdleConns = 2
	cfg.Redis.Host = redisHost
	cfg.Redis.Port = redisPort.Int()
	cfg.Redis.PoolSize = 10
	cfg.Redis.MinIdleConns = 2
	cfg.JWT.SecretKey = "testsecret"
	cfg.JWT.Exp = time.Minute

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
