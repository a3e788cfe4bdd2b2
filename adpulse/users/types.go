package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// subscription tiers, each mapping to a monthly analysis quota
const (
	TierFree   = "FREE"
	TierPro    = "PRO"
	TierAgency = "AGENCY"
)

// represents an account in the system
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Provider   string    `json:"provider,omitempty"`
	ProviderID string    `json:"-"`
	Name       string    `json:"name,omitempty"`
	AvatarURL  string    `json:"avatarUrl,omitempty"`
	Tier       string    `json:"subscriptionTier"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
