package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/office-hours-service/pkg/jwtauth"
	"github.com/m04kA/office-hours-service/pkg/metrics"
)

func newRouter(t *testing.T, roles ...jwtauth.Role) (*mux.Router, *jwtauth.Manager) {
	t.Helper()

	tokens, err := jwtauth.NewManager("secret", time.Hour, "test")
	require.NoError(t, err)

	r := mux.NewRouter()
	protected := r.PathPrefix("/").Subrouter()
	protected.Use(Auth(tokens), RequireRole(roles...))
	protected.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		id, _ := GetUserID(r.Context())
		role, _ := GetRole(r.Context())
		_, _ = w.Write([]byte(id.String() + " " + string(role)))
	})
	return r, tokens
}

func TestAuth(t *testing.T) {
	router, tokens := newRouter(t, jwtauth.RoleStudent)
	userID := uuid.New()

	studentToken, err := tokens.Issue(userID.String(), jwtauth.RoleStudent, "ada@uni.edu")
	require.NoError(t, err)
	professorToken, err := tokens.Issue(uuid.NewString(), jwtauth.RoleProfessor, "smith@uni.edu")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + studentToken, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + studentToken, http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"wrong role", "Bearer " + professorToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, userID.String()+" student", rec.Body.String())
			}
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	for range 2 {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/items/"+uuid.NewString(), nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/items/{id}", "201")))
}
