package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

func roleRequest(t *testing.T, role string, required ...string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected",
		func(c *gin.Context) { c.Set(ContextUserRole, role) },
		RequireRole(required...),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRole(t *testing.T) {
	t.Run("papel permitido passa", func(t *testing.T) {
		w := roleRequest(t, models.RoleOwner, models.RoleOwner, models.RoleCashier)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("papel fora da lista é barrado", func(t *testing.T) {
		w := roleRequest(t, models.RoleBarber, models.RoleOwner)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "insufficient_role")
	})

	t.Run("sem papel no contexto é barrado", func(t *testing.T) {
		w := roleRequest(t, "", models.RoleOwner)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
