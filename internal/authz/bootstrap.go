package authz

import (
	"fmt"

	"github.com/shopfront/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵，user 角色无后台权限
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleUser,
		},
		{
			Role:     constants.RoleAdmin,
			Inherits: []string{constants.RoleUser},
			Policies: []Policy{
				{Object: "/categories/admin", Action: "*"},
				{Object: "/categories/admin/:id", Action: "*"},
				{Object: "/products/admin", Action: "*"},
				{Object: "/products/admin/:id", Action: "*"},
				{Object: "/banners/admin", Action: "*"},
				{Object: "/banners/admin/:id", Action: "*"},
				{Object: "/coupons/admin", Action: "*"},
				{Object: "/coupons/admin/:id", Action: "*"},
				{Object: "/orders", Action: "GET"},
				{Object: "/orders/:id/status", Action: "PUT"},
				{Object: "/admin/users", Action: "*"},
				{Object: "/admin/users/:id", Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	changed := false
	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}

		exists, err := s.enforcer.HasNamedGroupingPolicy("g", role, roleAnchor)
		if err != nil {
			return fmt.Errorf("check builtin role failed: %w", err)
		}
		if !exists {
			added, err := s.enforcer.AddNamedGroupingPolicy("g", role, roleAnchor)
			if err != nil {
				return fmt.Errorf("create builtin role failed: %w", err)
			}
			if added {
				changed = true
			}
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			added, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole)
			if err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
			if added {
				changed = true
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			added, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action)
			if err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
			if added {
				changed = true
			}
		}
	}

	if changed {
		return s.saveAndReload()
	}
	return nil
}
