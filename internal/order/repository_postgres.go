package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, o *Order) error {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders
			(id, customer_name, phone, address, note, lines, total, slip_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, o.ID, o.CustomerName, o.Phone, o.Address, o.Note, lines, o.Total, o.SlipURL, o.Status, o.CreatedAt)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, customer_name, phone, address, note, lines, total, slip_url, status, created_at
		FROM orders
		WHERE id = $1
	`, id)

	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_name, phone, address, note, lines, total, slip_url, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $2 WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetSlip(ctx context.Context, id, slipURL string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET slip_url = $2 WHERE id = $1
	`, id, slipURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var lines []byte
	if err := row.Scan(
		&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.Note,
		&lines, &o.Total, &o.SlipURL, &o.Status, &o.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return nil, err
	}
	return &o, nil
}
