package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolhub/kolhub/internal/application/subscription/dto"
	domainPermission "github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/infrastructure/auth"
	infraPermission "github.com/kolhub/kolhub/internal/infrastructure/permission"
	"github.com/kolhub/kolhub/internal/shared/constants"
	appErrors "github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
	"github.com/kolhub/kolhub/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// identity simulates RequireAuth for routes that test later middleware.
func identity(staffID, brandID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyStaffID, staffID)
		c.Set(constants.ContextKeyBrandID, brandID)
		c.Set(constants.ContextKeyStaffRole, role)
		c.Set(constants.ContextKeySubject, role)
		c.Next()
	}
}

func serve(engine *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func errorType(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Type
}

// =====================================================================
// Auth
// =====================================================================

func TestRequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", 60)
	m := NewAuthMiddleware(jwtSvc, logger.NewNopLogger())

	engine := gin.New()
	engine.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		staffID, _ := utils.GetStaffID(c)
		brandID, _ := utils.GetBrandID(c)
		c.JSON(http.StatusOK, gin.H{"staff_id": staffID, "brand_id": brandID, "subject": utils.GetSubject(c)})
	})

	token, err := jwtSvc.Generate(7, 3, "admin")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/me", http.Header{"Authorization": {"Bearer " + token}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"staff_id":7,"brand_id":3,"subject":"admin"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/me", http.Header{"Authorization": {"Basic " + token}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other, err := auth.NewJWTService("other-secret", 60).Generate(7, 3, "admin")
		require.NoError(t, err)
		w := serve(engine, http.MethodGet, "/me", http.Header{"Authorization": {"Bearer " + other}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =====================================================================
// Casbin policies
// =====================================================================

func TestRequirePolicy(t *testing.T) {
	enforcer, err := infraPermission.NewMemoryEnforcer(logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, enforcer.SeedPolicies())
	m := NewPermissionMiddleware(enforcer, logger.NewNopLogger())

	tests := []struct {
		name string
		role string
		want int
	}{
		{"staff cannot edit permissions", "staff", http.StatusForbidden},
		{"admin can edit permissions", "admin", http.StatusOK},
		{"owner inherits admin", "owner", http.StatusOK},
		{"platform admin inherits owner", auth.RolePlatformAdmin, http.StatusOK},
		{"unknown role", "guest", http.StatusForbidden},
		{"no subject", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.PUT("/staff/:id/permissions",
				identity(1, 1, tt.role),
				m.RequirePolicy(domainPermission.ResourceStaffPermission, domainPermission.ActionUpdate),
				okHandler,
			)
			w := serve(engine, http.MethodPut, "/staff/5/permissions", nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

type failingEnforcer struct{}

func (failingEnforcer) Enforce(string, string, string) (bool, error) {
	return false, errors.New("adapter unavailable")
}

func TestRequirePolicy_EnforcerError(t *testing.T) {
	m := NewPermissionMiddleware(failingEnforcer{}, logger.NewNopLogger())
	engine := gin.New()
	engine.GET("/x", identity(1, 1, "admin"), m.RequirePolicy("brand", "read"), okHandler)

	assert.Equal(t, http.StatusInternalServerError, serve(engine, http.MethodGet, "/x", nil).Code)
}

// =====================================================================
// Brand lock gate
// =====================================================================

type stubStatusReader struct {
	status *dto.SubscriptionStatusDTO
	err    error
	calls  int
}

func (s *stubStatusReader) Execute(context.Context, uint) (*dto.SubscriptionStatusDTO, error) {
	s.calls++
	return s.status, s.err
}

func TestRequireActiveBrand(t *testing.T) {
	t.Run("locked brand is rejected", func(t *testing.T) {
		reader := &stubStatusReader{status: &dto.SubscriptionStatusDTO{BrandID: 3, IsLocked: true}}
		m := NewBrandAccessMiddleware(reader, logger.NewNopLogger())
		engine := gin.New()
		engine.GET("/staff/1/permissions", identity(1, 3, "staff"), m.RequireActiveBrand(), okHandler)

		w := serve(engine, http.MethodGet, "/staff/1/permissions", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, string(appErrors.ErrorTypeLocked), errorType(t, w))
	})

	t.Run("active brand passes", func(t *testing.T) {
		reader := &stubStatusReader{status: &dto.SubscriptionStatusDTO{BrandID: 3}}
		m := NewBrandAccessMiddleware(reader, logger.NewNopLogger())
		engine := gin.New()
		engine.GET("/x", identity(1, 3, "staff"), m.RequireActiveBrand(), okHandler)

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/x", nil).Code)
	})

	t.Run("platform admin skips the lookup", func(t *testing.T) {
		reader := &stubStatusReader{}
		m := NewBrandAccessMiddleware(reader, logger.NewNopLogger())
		engine := gin.New()
		engine.GET("/x", identity(1, 0, auth.RolePlatformAdmin), m.RequireActiveBrand(), okHandler)

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/x", nil).Code)
		assert.Zero(t, reader.calls)
	})

	t.Run("missing brand is not found", func(t *testing.T) {
		reader := &stubStatusReader{err: appErrors.NewNotFoundError("brand not found")}
		m := NewBrandAccessMiddleware(reader, logger.NewNopLogger())
		engine := gin.New()
		engine.GET("/x", identity(1, 9, "staff"), m.RequireActiveBrand(), okHandler)

		assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/x", nil).Code)
	})
}

// =====================================================================
// Capability gate
// =====================================================================

type stubCapabilityChecker struct {
	allowed  bool
	err      error
	lastPath string
}

func (s *stubCapabilityChecker) Execute(_ context.Context, _ uint, path string) (bool, error) {
	s.lastPath = path
	return s.allowed, s.err
}

func TestRequireCapability(t *testing.T) {
	t.Run("granted", func(t *testing.T) {
		checker := &stubCapabilityChecker{allowed: true}
		m := NewCapabilityMiddleware(checker, logger.NewNopLogger())
		engine := gin.New()
		engine.GET("/export", identity(1, 1, "staff"), m.RequireCapability("operations.exportData"), okHandler)

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/export", nil).Code)
		assert.Equal(t, "operations.exportData", checker.lastPath)
	})

	t.Run("denied", func(t *testing.T) {
		m := NewCapabilityMiddleware(&stubCapabilityChecker{}, logger.NewNopLogger())
		engine := gin.New()
		engine.GET("/export", identity(1, 1, "staff"), m.RequireCapability("operations.exportData"), okHandler)

		assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodGet, "/export", nil).Code)
	})

	t.Run("brand managers skip the matrix", func(t *testing.T) {
		for _, role := range []string{"owner", "admin"} {
			checker := &stubCapabilityChecker{}
			m := NewCapabilityMiddleware(checker, logger.NewNopLogger())
			engine := gin.New()
			engine.GET("/team", identity(1, 1, role), m.RequireCapability("dataVisibility.viewTeamData"), okHandler)

			assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/team", nil).Code, role)
			assert.Empty(t, checker.lastPath, role)
		}
	})

	t.Run("platform admin skips the matrix", func(t *testing.T) {
		checker := &stubCapabilityChecker{}
		m := NewCapabilityMiddleware(checker, logger.NewNopLogger())
		engine := gin.New()
		engine.GET("/team", identity(1, 0, "platform_admin"), m.RequireCapability("dataVisibility.viewTeamData"), okHandler)

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/team", nil).Code)
		assert.Empty(t, checker.lastPath)
	})

	t.Run("checker error", func(t *testing.T) {
		m := NewCapabilityMiddleware(&stubCapabilityChecker{err: appErrors.NewNotFoundError("staff not found")}, logger.NewNopLogger())
		engine := gin.New()
		engine.GET("/team", identity(1, 1, "staff"), m.RequireCapability("dataVisibility.viewTeamData"), okHandler)

		assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/team", nil).Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		m := NewCapabilityMiddleware(&stubCapabilityChecker{allowed: true}, logger.NewNopLogger())
		engine := gin.New()
		engine.GET("/export", m.RequireCapability("operations.exportData"), okHandler)

		assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/export", nil).Code)
	})
}

// =====================================================================
// Ambient middleware
// =====================================================================

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := serve(engine, http.MethodGet, "/x", http.Header{constants.HeaderXRequestID: {"req-123"}})
	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(constants.HeaderXRequestID))

	w = serve(engine, http.MethodGet, "/x", nil)
	assert.Len(t, w.Body.String(), 36)
}

type recordedRequest struct {
	method, route string
	status        int
}

type stubObserver struct {
	requests []recordedRequest
}

func (s *stubObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	s.requests = append(s.requests, recordedRequest{method, route, status})
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	observer := &stubObserver{}
	engine := gin.New()
	engine.Use(Metrics(observer))
	engine.GET("/staff/:id/permissions", okHandler)

	serve(engine, http.MethodGet, "/staff/42/permissions", nil)
	serve(engine, http.MethodGet, "/nope", nil)

	require.Len(t, observer.requests, 2)
	assert.Equal(t, recordedRequest{http.MethodGet, "/staff/:id/permissions", http.StatusOK}, observer.requests[0])
	assert.Equal(t, recordedRequest{http.MethodGet, "unmatched", http.StatusNotFound}, observer.requests[1])
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewNopLogger()))
	engine.GET("/boom", func(*gin.Context) { panic("boom") })

	w := serve(engine, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://app.kolhub.test"}))
	engine.GET("/x", okHandler)

	w := serve(engine, http.MethodOptions, "/x", http.Header{"Origin": {"https://app.kolhub.test"}})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.kolhub.test", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(engine, http.MethodGet, "/x", http.Header{"Origin": {"https://evil.test"}})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
