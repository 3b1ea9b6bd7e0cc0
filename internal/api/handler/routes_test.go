package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/middleware"
)

func findRoute(t *testing.T, routes []router.Route, method, path string) router.Route {
	t.Helper()

	for _, route := range routes {
		if route.Method == method && route.Path == path {
			return route
		}
	}

	t.Fatalf("rota não encontrada: %s %s", method, path)
	return router.Route{}
}

// serveWithRole aplica os middlewares da rota sobre um handler de teste
// e serve a requisição com as claims do papel informado.
func serveWithRole(route router.Route, roleID int) (*httptest.ResponseRecorder, bool) {
	handlerReached := false
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerReached = true
		w.WriteHeader(http.StatusOK)
	})

	for i := len(route.Middlewares) - 1; i >= 0; i-- {
		handler = route.Middlewares[i](handler)
	}

	req := httptest.NewRequest(route.Method, "/qualquer", nil)
	claims := &domain.Claims{UserID: 2, UserName: "bruno", UserRoleID: roleID}
	req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder, handlerReached
}

func TestEmployeeRoutes_PapeisExigidos(t *testing.T) {
	routes := Employees(nil, nil)

	tests := []struct {
		name           string
		method         string
		path           string
		roleID         int
		expectedStatus int
		expectReached  bool
	}{
		{
			name:           "supervisor desativa empregado",
			method:         http.MethodDelete,
			path:           "/v1/employees/:id",
			roleID:         domain.RoleSupervisor,
			expectedStatus: http.StatusOK,
			expectReached:  true,
		},
		{
			name:           "vendedor não desativa empregado",
			method:         http.MethodDelete,
			path:           "/v1/employees/:id",
			roleID:         domain.RoleVendor,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "supervisor lista empregados",
			method:         http.MethodGet,
			path:           "/v1/employees",
			roleID:         domain.RoleSupervisor,
			expectedStatus: http.StatusOK,
			expectReached:  true,
		},
		{
			name:           "vendedor não lista empregados",
			method:         http.MethodGet,
			path:           "/v1/employees",
			roleID:         domain.RoleVendor,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "supervisor cadastra empregado",
			method:         http.MethodPost,
			path:           "/v1/employees",
			roleID:         domain.RoleSupervisor,
			expectedStatus: http.StatusOK,
			expectReached:  true,
		},
		{
			name:           "vendedor consulta o próprio progresso de meta",
			method:         http.MethodGet,
			path:           "/v1/employees/:id/goal-progress",
			roleID:         domain.RoleVendor,
			expectedStatus: http.StatusOK,
			expectReached:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := findRoute(t, routes, tt.method, tt.path)
			require.NotEmpty(t, route.Middlewares)

			recorder, reached := serveWithRole(route, tt.roleID)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectReached, reached)
		})
	}
}
