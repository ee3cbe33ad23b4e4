package service

import (
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"

	"github.com/google/uuid"
)

// Session carries the authenticated caller's identity into every operation.
// It is built by the auth middleware and passed explicitly so authorization
// can be tested without any framework context.
type Session struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   model.Role
}

// requireRole is the authorization guard: nil session means not
// authenticated, a role outside the allowed set means forbidden. Every
// role-scoped operation calls this before touching storage.
func requireRole(s *Session, roles ...model.Role) error {
	if s == nil {
		return ErrUnauthenticated
	}
	for _, r := range roles {
		if s.Role == r {
			return nil
		}
	}
	return ErrForbidden
}

func requireAuthenticated(s *Session) error {
	if s == nil {
		return ErrUnauthenticated
	}
	return nil
}
