// Package permission adapts casbin to the role policy used by the HTTP layer.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// rbacModel is plain RBAC with role inheritance through g.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var _ permission.PolicyEnforcer = (*Enforcer)(nil)

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores policies in the casbin_rule table through gorm.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}
	return newEnforcer(adapter, log)
}

// NewMemoryEnforcer keeps policies in memory only.
func NewMemoryEnforcer(log logger.Interface) (*Enforcer, error) {
	return newEnforcer(nil, log)
}

func newEnforcer(adapter persist.Adapter, log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	var e *casbin.Enforcer
	if adapter != nil {
		e, err = casbin.NewEnforcer(m, adapter)
	} else {
		e, err = casbin.NewEnforcer(m)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	return &Enforcer{enforcer: e, logger: log}, nil
}

func (e *Enforcer) Enforce(subject string, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subject, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "subject", subject, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// SeedPolicies installs the built-in role policies. Existing rules are kept,
// so it is safe to call on every start.
func (e *Enforcer) SeedPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPoliciesEx(defaultPolicies); err != nil {
		return fmt.Errorf("failed to add policies: %w", err)
	}
	if _, err := e.enforcer.AddGroupingPoliciesEx(roleHierarchy); err != nil {
		return fmt.Errorf("failed to add role hierarchy: %w", err)
	}

	e.logger.Infow("role policies seeded", "policies", len(defaultPolicies), "groupings", len(roleHierarchy))
	return nil
}
