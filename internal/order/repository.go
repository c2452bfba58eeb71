package order

import "context"

// Repository defines all database operations for orders.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)

	// List returns the order log, newest first.
	List(ctx context.Context) ([]Order, error)

	UpdateStatus(ctx context.Context, id string, status string) error
	SetSlip(ctx context.Context, id string, slipURL string) error
}
