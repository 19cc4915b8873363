// Package auth validates credentials against a fixed in-memory user list and
// keeps the session in the durable local store. Only the user id is
// persisted; on startup the id is re-resolved against the list, so
// deactivating a user invalidates any existing session on the next load.
package auth

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmoralesmx/cotizador/internal/localstore"
	"github.com/dmoralesmx/cotizador/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("credenciales invalidas")
	ErrUserInactive       = errors.New("usuario inactivo")
)

type Service struct {
	store *localstore.Store
	users []models.User

	mu      sync.RWMutex
	current *models.User
}

func New(store *localstore.Store, users []models.User) *Service {
	return &Service{store: store, users: users}
}

// Login matches a trimmed, lowercased email plus password against the static
// list. A wrong password yields ErrInvalidCredentials; a correct password
// for a deactivated user yields the distinct ErrUserInactive. On success the
// user id is persisted as the session.
func (s *Service) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var match *models.User
	for i := range s.users {
		if strings.ToLower(s.users[i].Email) == email {
			match = &s.users[i]
			break
		}
	}
	if match == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !match.Active {
		return nil, ErrUserInactive
	}
	if err := s.store.Put(localstore.KeySession, []byte(match.ID)); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = match
	s.mu.Unlock()
	return match, nil
}

// Resume re-resolves the persisted user id against the static list. A
// missing, unknown, or deactivated id clears the session.
func (s *Service) Resume() (*models.User, bool) {
	raw, ok, err := s.store.Get(localstore.KeySession)
	if err != nil || !ok {
		return nil, false
	}
	id := string(raw)
	for i := range s.users {
		if s.users[i].ID == id && s.users[i].Active {
			s.mu.Lock()
			s.current = &s.users[i]
			s.mu.Unlock()
			return &s.users[i], true
		}
	}
	_ = s.store.Delete(localstore.KeySession)
	return nil, false
}

// Logout clears the persisted session.
func (s *Service) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.store.Delete(localstore.KeySession)
}

// Current returns the logged-in user, if any.
func (s *Service) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// DefaultUsers is the shop's fixed credential list. Passwords are hashed at
// construction; the set is static and not security-critical here.
func DefaultUsers() []models.User {
	mk := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		return string(h)
	}
	return []models.User{
		{ID: "1", Nombre: "Daniel Morales", Email: "daniel@mueblescotiza.mx", PasswordHash: mk("taller2024"), Role: models.RoleSuperAdmin, Active: true},
		{ID: "2", Nombre: "Administracion", Email: "admin@mueblescotiza.mx", PasswordHash: mk("admin2024"), Role: models.RoleAdmin, Active: true},
		{ID: "3", Nombre: "Ventas", Email: "ventas@mueblescotiza.mx", PasswordHash: mk("ventas2024"), Role: models.RoleSeller, Active: true},
		{ID: "4", Nombre: "Instalaciones", Email: "instala@mueblescotiza.mx", PasswordHash: mk("instala2024"), Role: models.RoleInstaller, Active: true},
	}
}
