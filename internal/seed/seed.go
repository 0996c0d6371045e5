package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Code        string
	Count       int
	Description string
}

// Apply inserts basic seed data for manual testing. It is idempotent: rows
// are only inserted when the code is not yet present.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "M5 Hex Bolt (100 pack)",
			Code:        "BLT-M5-100",
			Count:       42,
			Description: "Zinc-plated, DIN 933",
		},
		{
			Name:        "Cable Tie 200mm",
			Code:        "CT-200",
			Count:       4,
			Description: "Black nylon, UV resistant",
		},
		{
			Name:        "Thermal Paste 4g",
			Code:        "TP-4G",
			Count:       12,
		},
	}

	for _, p := range products {
		if err := insertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("insert product %s: %w", p.Code, err)
		}
	}

	return nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, code, count, description)
SELECT $1, $2, $3, NULLIF($4, '')
WHERE NOT EXISTS (SELECT 1 FROM products WHERE code = $2)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Code, p.Count, p.Description)
	return err
}
