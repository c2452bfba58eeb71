package auth

import "context"

// OwnerRepository defines the data-access contract.
// Service depends ONLY on this interface.
type OwnerRepository interface {
	Save(ctx context.Context, owner *Owner) error
	FindByEmail(ctx context.Context, email string) (*Owner, error)
	Count(ctx context.Context) (int, error)
}
