package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/hugh/gatekeeper/internal/database/models"
)

// Authenticator defines the interface for user registration and
// authentication operations.
type Authenticator interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TokenIssuer defines the interface for signed token operations.
type TokenIssuer interface {
	GeneratePair(userID uuid.UUID, email string, role models.Role) (TokenPair, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Compile-time interface satisfaction checks
var (
	_ Authenticator = (*Service)(nil)
	_ TokenIssuer   = (*JWTService)(nil)
)
