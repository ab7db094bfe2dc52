package admin

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the administrator entity, mapped 1:1 to the admins table.
type Admin struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Email string    `db:"email" json:"email"`

	// Never expose in JSON
	PasswordHash string `db:"password_hash" json:"-"`

	Name string `db:"name" json:"name"`
	Role Role   `db:"role" json:"role"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Role enum. Editor is honored by the authorization gate but no exposed
// operation assigns it; provisioning editors is a known gap.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ToDTO strips sensitive fields for responses.
func (a *Admin) ToDTO() AdminDTO {
	return AdminDTO{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}
