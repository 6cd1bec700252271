package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func echoUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]int64{"userId": userID})
}

func TestHeaderIdentity(t *testing.T) {
	provider := NewHeaderIdentity("")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := provider.Identify(r)
	assert.ErrorIs(t, err, ErrMissingIdentity)

	r.Header.Set("X-User-ID", "abc")
	_, err = provider.Identify(r)
	assert.ErrorIs(t, err, ErrInvalidIdentity)

	r.Header.Set("X-User-ID", "17")
	id, err := provider.Identify(r)
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
}

func TestJWTIdentity(t *testing.T) {
	provider := NewJWTIdentity(testSecret)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name    string
		header  string
		wantID  int64
		wantErr error
	}{
		{name: "missing", header: "", wantErr: ErrMissingIdentity},
		{name: "not bearer", header: "Basic abc", wantErr: ErrInvalidIdentity},
		{
			name:   "valid",
			header: "Bearer " + signToken(t, testSecret, jwt.RegisteredClaims{Subject: "42", ExpiresAt: future}),
			wantID: 42,
		},
		{
			name:    "wrong secret",
			header:  "Bearer " + signToken(t, "other", jwt.RegisteredClaims{Subject: "42", ExpiresAt: future}),
			wantErr: ErrInvalidIdentity,
		},
		{
			name: "expired",
			header: "Bearer " + signToken(t, testSecret, jwt.RegisteredClaims{
				Subject:   "42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}),
			wantErr: ErrInvalidIdentity,
		},
		{
			name:    "non numeric subject",
			header:  "Bearer " + signToken(t, testSecret, jwt.RegisteredClaims{Subject: "jane", ExpiresAt: future}),
			wantErr: ErrInvalidIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			id, err := provider.Identify(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestAuth(t *testing.T) {
	handler := Auth(NewHeaderIdentity("X-User-ID"))(http.HandlerFunc(echoUserID))

	t.Run("unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, handlers.CodeUnauthorized, body.Code)
	})

	t.Run("authorized", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("X-User-ID", "5")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":5}`, rec.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "client-id")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, "client-id", seen)
}

type observedRequest struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	observed []observedRequest
}

func (f *fakeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.observed = append(f.observed, observedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	obs := &fakeObserver{}
	router := mux.NewRouter()
	router.Use(MetricsMiddleware(obs))
	router.HandleFunc("/api/v1/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/123", nil))

	require.Len(t, obs.observed, 1)
	assert.Equal(t, observedRequest{method: http.MethodGet, route: "/api/v1/bookings/{id}", status: http.StatusNotFound}, obs.observed[0])
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAccessLog_PassesThrough(t *testing.T) {
	handler := AccessLog(nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
