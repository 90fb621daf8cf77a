// Package staff holds brand staff accounts and their capability matrix.
package staff

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kolhub/kolhub/internal/domain/permission"
)

// Role is the staff account's position inside its brand.
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// IsValid checks if the role is known
func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleStaff
}

// CanManageStaff reports whether the role may create staff and edit their permissions.
func (r Role) CanManageStaff() bool {
	return r == RoleOwner || r == RoleAdmin
}

var (
	ErrInvalidName    = errors.New("staff name is required")
	ErrInvalidEmail   = errors.New("invalid staff email")
	ErrInvalidRole    = errors.New("invalid staff role")
	ErrInvalidBrandID = errors.New("brand ID is required")
	ErrIDAlreadySet   = errors.New("staff ID is already set")
	ErrZeroID         = errors.New("staff ID cannot be zero")
)

// Staff is a business user working for a brand.
type Staff struct {
	id          uint
	uuid        string
	brandID     uint
	name        string
	email       string
	role        Role
	permissions permission.Set
	createdAt   time.Time
	updatedAt   time.Time
}

// NewStaff creates a staff account holding the default permission set.
func NewStaff(brandID uint, name, email string, role Role, now time.Time) (*Staff, error) {
	if brandID == 0 {
		return nil, ErrInvalidBrandID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	return &Staff{
		uuid:        uuid.NewString(),
		brandID:     brandID,
		name:        name,
		email:       strings.ToLower(email),
		role:        role,
		permissions: permission.DefaultSet(),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructParams carries persisted staff fields.
type ReconstructParams struct {
	ID          uint
	UUID        string
	BrandID     uint
	Name        string
	Email       string
	Role        Role
	Permissions permission.Set
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Reconstruct rebuilds a staff account from persistence. Stored permissions
// are kept as they are, even when partial.
func Reconstruct(p ReconstructParams) (*Staff, error) {
	if p.ID == 0 {
		return nil, ErrZeroID
	}
	if !p.Role.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, p.Role)
	}

	return &Staff{
		id:          p.ID,
		uuid:        p.UUID,
		brandID:     p.BrandID,
		name:        p.Name,
		email:       p.Email,
		role:        p.Role,
		permissions: p.Permissions,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}, nil
}

func (s *Staff) ID() uint             { return s.id }
func (s *Staff) UUID() string         { return s.uuid }
func (s *Staff) BrandID() uint        { return s.brandID }
func (s *Staff) Name() string         { return s.name }
func (s *Staff) Email() string        { return s.email }
func (s *Staff) Role() Role           { return s.role }
func (s *Staff) CreatedAt() time.Time { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time { return s.updatedAt }

// Permissions returns a copy of the capability matrix.
func (s *Staff) Permissions() permission.Set {
	return s.permissions.Clone()
}

// SetID sets the staff ID (only for persistence layer use)
func (s *Staff) SetID(id uint) error {
	if s.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrZeroID
	}
	s.id = id
	return nil
}

// UpdatePermissions replaces the whole matrix.
func (s *Staff) UpdatePermissions(set permission.Set, now time.Time) {
	s.permissions = set.Clone()
	s.updatedAt = now
}

// Can checks a single "category.key" capability.
func (s *Staff) Can(path string) bool {
	return permission.HasPermission(s.permissions, path)
}

// Template classifies the current matrix.
func (s *Staff) Template() permission.TemplateID {
	return permission.IdentifyTemplate(s.permissions)
}
