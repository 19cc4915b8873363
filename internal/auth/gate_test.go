package auth

import (
	"testing"

	"github.com/dmoralesmx/cotizador/internal/models"
)

func TestPermissionMatches(t *testing.T) {
	if !Permission("cotizacion:create").Matches(NewPermission("cotizacion", ActionCreate)) {
		t.Error("exact match failed")
	}
	if Permission("cotizacion:create").Matches(NewPermission("cotizacion", ActionDelete)) {
		t.Error("different action must not match")
	}
	if !Permission("cotizacion:*").Matches(NewPermission("cotizacion", ActionDelete)) {
		t.Error("action wildcard failed")
	}
	if !PermissionSuperAdmin.Matches(NewPermission("negocio", ActionUpdate)) {
		t.Error("*:* must match everything")
	}
	if Permission("invalid").Matches(NewPermission("cotizacion", ActionView)) {
		t.Error("malformed permission must not match")
	}
}

func TestRoleGating(t *testing.T) {
	seller := &models.User{Role: models.RoleSeller}
	installer := &models.User{Role: models.RoleInstaller}
	super := &models.User{Role: models.RoleSuperAdmin}

	if !Can(seller, ActionCreate, "cotizacion") {
		t.Error("seller creates quotations")
	}
	if Can(seller, ActionUpdate, "negocio") {
		t.Error("seller must not edit the business profile")
	}
	if !Can(installer, ActionView, "cotizacion") {
		t.Error("installer views quotations")
	}
	if Can(installer, ActionCreate, "cotizacion") {
		t.Error("installer must not create quotations")
	}
	if !Can(super, ActionDelete, "negocio") {
		t.Error("super-admin can do anything")
	}
	if Can(nil, ActionView, "cotizacion") {
		t.Error("nil user is never authorized")
	}
}
