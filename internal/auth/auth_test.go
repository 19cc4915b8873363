package auth

import (
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmoralesmx/cotizador/internal/localstore"
	"github.com/dmoralesmx/cotizador/internal/models"
)

func openTestStore(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.OpenDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func testUsers(t *testing.T) []models.User {
	t.Helper()
	return []models.User{
		{ID: "1", Nombre: "Activo", Email: "ventas@taller.mx", PasswordHash: hash(t, "secreto1"), Role: models.RoleSeller, Active: true},
		{ID: "2", Nombre: "Baja", Email: "baja@taller.mx", PasswordHash: hash(t, "secreto2"), Role: models.RoleSeller, Active: false},
	}
}

func TestLoginSuccessPersistsOnlyUserID(t *testing.T) {
	store := openTestStore(t)
	svc := New(store, testUsers(t))

	u, err := svc.Login("ventas@taller.mx", "secreto1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != "1" {
		t.Fatalf("wrong user: %+v", u)
	}
	raw, ok, err := store.Get(localstore.KeySession)
	if err != nil || !ok {
		t.Fatalf("session not persisted: ok=%v err=%v", ok, err)
	}
	if string(raw) != "1" {
		t.Fatalf("session must hold only the user id, got %q", raw)
	}
}

func TestLoginEmailIsTrimmedAndCaseInsensitive(t *testing.T) {
	svc := New(openTestStore(t), testUsers(t))
	if _, err := svc.Login("  VENTAS@Taller.MX  ", "secreto1"); err != nil {
		t.Fatalf("case-differing email must succeed: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := New(openTestStore(t), testUsers(t))
	if _, err := svc.Login("ventas@taller.mx", "nope"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginInactiveUserIsDistinctError(t *testing.T) {
	svc := New(openTestStore(t), testUsers(t))
	// correct credentials for a deactivated user: inactive, not invalid
	if _, err := svc.Login("baja@taller.mx", "secreto2"); err != ErrUserInactive {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
	// wrong password for the same user stays invalid-credentials
	if _, err := svc.Login("baja@taller.mx", "nope"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestResumeRevalidatesAgainstTheList(t *testing.T) {
	store := openTestStore(t)
	users := testUsers(t)
	svc := New(store, users)
	if _, err := svc.Login("ventas@taller.mx", "secreto1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// fresh process, same list: session resumes
	svc2 := New(store, users)
	if u, ok := svc2.Resume(); !ok || u.ID != "1" {
		t.Fatalf("resume failed: ok=%v", ok)
	}

	// the user is deactivated before the next start: session invalidated
	deactivated := testUsers(t)
	deactivated[0].Active = false
	svc3 := New(store, deactivated)
	if _, ok := svc3.Resume(); ok {
		t.Fatal("deactivated user must not resume")
	}
	if _, ok, _ := store.Get(localstore.KeySession); ok {
		t.Fatal("stale session must be cleared")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	store := openTestStore(t)
	svc := New(store, testUsers(t))
	if _, err := svc.Login("ventas@taller.mx", "secreto1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if svc.Current() != nil {
		t.Fatal("current user must be nil after logout")
	}
	if _, ok := svc.Resume(); ok {
		t.Fatal("session must not resume after logout")
	}
}
