package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de acesso
const (
	RoleAdmin        = 1
	RoleManager      = 2
	RoleCollaborator = 3
)

type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Active         bool      `json:"active"`
	RoleID         int       `json:"role_id"`
	CollaboratorID *int64    `json:"collaborator_id"`
	StoreID        *int64    `json:"store_id"`
	AvatarURL      *string   `json:"avatar_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Claims struct {
	UserID             int64
	UserName           string
	UserEmail          string
	UserRoleID         int
	UserCollaboratorID *int64
	UserStoreID        *int64
	jwt.RegisteredClaims
}

// CanViewStore informa se o usuário pode ver os números da loja
func (c *Claims) CanViewStore(storeID int64) bool {
	if c.UserRoleID == RoleAdmin {
		return true
	}
	return c.UserRoleID == RoleManager && c.UserStoreID != nil && *c.UserStoreID == storeID
}

// CanViewCollaborator informa se o usuário pode ver os números do colaborador
func (c *Claims) CanViewCollaborator(collaboratorID, storeID int64) bool {
	if c.UserRoleID == RoleAdmin {
		return true
	}
	if c.UserCollaboratorID != nil && *c.UserCollaboratorID == collaboratorID {
		return true
	}
	return c.UserRoleID == RoleManager && c.UserStoreID != nil && *c.UserStoreID == storeID
}
