package product

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/hamzzakaya/nano-envanter/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
	now    func() time.Time
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id::text, name, code, count, COALESCE(description, ''), created_at, updated_at
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var rec record
		if err := rows.Scan(&rec.Key, &rec.Name, &rec.Code, &rec.Count, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		p, err := rec.transfer()
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	const q = `
SELECT id::text, name, code, count, COALESCE(description, ''), created_at, updated_at
FROM products
WHERE id = $1
`
	var rec record
	err := r.pool.QueryRow(ctx, q, id).Scan(&rec.Key, &rec.Name, &rec.Code, &rec.Count, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	p, err := rec.transfer()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create checks code uniqueness and inserts in two separate statements. The
// check is not atomic with the insert; concurrent creations with the same
// code can race past it.
func (r *postgresRepo) Create(ctx context.Context, patch domain.ProductPatch) (*domain.Product, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE code = $1)`, patch.Code).Scan(&exists)
	if err != nil {
		r.logger.Printf("product repo: create code check code=%s error=%v", patch.Code, err)
		return nil, err
	}
	if exists {
		r.logger.Printf("product repo: create code=%s duplicate", patch.Code)
		return nil, domain.ErrDuplicateCode
	}

	rec := newRecord(patch, time.Time{}, r.now())
	const q = `
INSERT INTO products (name, code, count, description, created_at, updated_at)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
RETURNING id::text
`
	err = r.pool.QueryRow(ctx, q, rec.Name, rec.Code, rec.Count, rec.Description, rec.CreatedAt, rec.UpdatedAt).Scan(&rec.Key)
	if err != nil {
		r.logger.Printf("product repo: create code=%s error=%v", rec.Code, err)
		return nil, err
	}
	p, err := rec.transfer()
	if err != nil {
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s code=%s", p.ID, p.Code)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	const q = `
UPDATE products
SET name = $2, code = $3, count = $4, description = NULLIF($5, ''), updated_at = $6
WHERE id = $1
RETURNING id::text, name, code, count, COALESCE(description, ''), created_at, updated_at
`
	var rec record
	err := r.pool.QueryRow(ctx, q, id, patch.Name, patch.Code, patch.Count, patch.Description, r.now()).
		Scan(&rec.Key, &rec.Name, &rec.Code, &rec.Count, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: update id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", id, err)
		return nil, err
	}
	p, err := rec.transfer()
	if err != nil {
		return nil, err
	}
	r.logger.Printf("product repo: updated id=%s code=%s", p.ID, p.Code)
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("product repo: delete id=%s not found", id)
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

// validID rejects identifiers that cannot be a products primary key before
// they reach the database.
func validID(id string) error {
	var u pgtype.UUID
	if err := u.Scan(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}
