package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

func requestWithClaims(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/sales", nil)
	claims := &domain.Claims{UserID: 7, UserName: "ana", UserRoleID: roleID}
	return req.WithContext(context.WithValue(req.Context(), ContextKeyUser, claims))
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		request        *http.Request
		middleware     func(http.Handler) http.Handler
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "admin acessa rota de admin",
			request:        requestWithClaims(domain.RoleAdmin),
			middleware:     AdminOnly(),
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "vendedor barrado em rota de admin",
			request:        requestWithClaims(domain.RoleVendor),
			middleware:     AdminOnly(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "supervisor acessa rota de relatórios",
			request:        requestWithClaims(domain.RoleSupervisor),
			middleware:     AdminOrSupervisor(),
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "vendedor barrado em rota de relatórios",
			request:        requestWithClaims(domain.RoleVendor),
			middleware:     AdminOrSupervisor(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "vendedor acessa rota aberta a todos os papéis",
			request:        requestWithClaims(domain.RoleVendor),
			middleware:     AllRoles(),
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "admin acessa rota aberta a todos os papéis",
			request:        requestWithClaims(domain.RoleAdmin),
			middleware:     AllRoles(),
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "papel fora da faixa é recusado",
			request:        requestWithClaims(9),
			middleware:     AllRoles(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "requisição sem claims no contexto",
			request:        httptest.NewRequest(http.MethodGet, "/v1/sales", nil),
			middleware:     AllRoles(),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			recorder := httptest.NewRecorder()
			tt.middleware(next).ServeHTTP(recorder, tt.request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
