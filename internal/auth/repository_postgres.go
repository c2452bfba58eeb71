package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresOwnerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOwnerRepository(db *pgxpool.Pool) *PostgresOwnerRepository {
	return &PostgresOwnerRepository{db: db}
}

func (r *PostgresOwnerRepository) Save(ctx context.Context, owner *Owner) error {
	if owner.ID == "" {
		owner.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO owners (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`, owner.ID, owner.Name, owner.Email, owner.Password, owner.Role)
	return err
}

func (r *PostgresOwnerRepository) FindByEmail(ctx context.Context, email string) (*Owner, error) {
	var owner Owner
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password, role
		FROM owners
		WHERE email = $1
	`, email).Scan(&owner.ID, &owner.Name, &owner.Email, &owner.Password, &owner.Role)
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *PostgresOwnerRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM owners`).Scan(&n)
	return n, err
}
