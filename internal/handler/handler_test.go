package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/kroawen/nest-auth-example/internal/config"
	"github.com/kroawen/nest-auth-example/internal/handler"
	"github.com/kroawen/nest-auth-example/internal/repository"
	"github.com/kroawen/nest-auth-example/internal/server"
	"github.com/kroawen/nest-auth-example/internal/usecase"
	"github.com/kroawen/nest-auth-example/shared/auth"
	"github.com/kroawen/nest-auth-example/shared/middleware"
	"github.com/kroawen/nest-auth-example/shared/validator"
)

// testEnv assembles the full router against in-memory repositories, the same
// wiring cmd/server performs against mongo.
type testEnv struct {
	router  http.Handler
	users   *repository.InMemoryUserRepository
	jwtAuth auth.JWTAuthenticator
	cfg     *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Token: config.TokenConfig{
			Secret:    "test-secret",
			ExpiresIn: time.Hour,
			Issuer:    "test-app",
		},
	}

	logger := zerolog.Nop()
	users := repository.NewInMemoryUserRepository()
	todos := repository.NewInMemoryTodoRepository()
	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer)

	validate, err := validator.New()
	require.NoError(t, err)

	authHandler := handler.NewAuthHandler(usecase.NewAuthUsecase(users, jwtAuth, cfg, &logger), validate, &logger)
	profileHandler := handler.NewProfileHandler(usecase.NewProfileUsecase(users), validate, &logger)
	todoHandler := handler.NewTodoHandler(usecase.NewTodoUsecase(todos), validate, &logger)

	guard := middleware.RequireAuth(jwtAuth, cfg.Token.Secret, users, &logger)
	router := server.NewRouter(logger, guard, authHandler, profileHandler, todoHandler)

	return &testEnv{
		router:  router,
		users:   users,
		jwtAuth: jwtAuth,
		cfg:     cfg,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

// register creates a user over the API and returns the response body and the
// bearer token from the Authorization header.
func (e *testEnv) register(t *testing.T, name, email, password string) (map[string]any, string) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	return decodeBody(t, rec), bearerFromHeader(t, rec)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func bearerFromHeader(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	header := rec.Header().Get("Authorization")
	require.Regexp(t, `^Bearer\s+\S+`, header)

	return header[len("Bearer "):]
}
