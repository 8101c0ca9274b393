package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/licocastillo/inventario/internal/platform/db"
)

const pgUniqueViolation = "23505"

const productColumns = `id, sku, name, category, packaging, supplier, purchase_price, sale_price, stock, status, created_at, updated_at`

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// PostgresRepository persists products in PostgreSQL. The db field is
// satisfied by both the pool and a pgx.Tx, so the same queries run inside
// and outside WithTx.
type PostgresRepository struct {
	db   dbtx
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgresRepository on the given pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: pool, pool: pool}
}

// WithTx runs fn with a repository bound to a single RepeatableRead
// transaction. Concurrent updates to one row serialize through row locking
// in the store, not through in-process locks.
func (r *PostgresRepository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &PostgresRepository{db: tx, pool: r.pool})
	})
}

func (r *PostgresRepository) Save(ctx context.Context, p *Product) (*Product, error) {
	const query = `INSERT INTO products (sku, name, category, packaging, supplier, purchase_price, sale_price, stock, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	saved := *p
	err := r.db.QueryRow(ctx, query,
		p.SKU, p.Name, p.Category, p.Packaging, p.Supplier,
		p.PurchasePrice, p.SalePrice, p.Stock, string(p.Status),
		p.CreatedAt, p.UpdatedAt,
	).Scan(&saved.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateSKU
		}
		return nil, storageErr("save", err)
	}
	return &saved, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *Product) (*Product, error) {
	const query = `UPDATE products
		SET name = $1, category = $2, packaging = $3, supplier = $4,
			purchase_price = $5, sale_price = $6, stock = $7, status = $8, updated_at = $9
		WHERE id = $10
		RETURNING ` + productColumns

	row := r.db.QueryRow(ctx, query,
		p.Name, p.Category, p.Packaging, p.Supplier,
		p.PurchasePrice, p.SalePrice, p.Stock, string(p.Status), p.UpdatedAt,
		p.ID,
	)
	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, storageErr("update", err)
	}
	return updated, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *PostgresRepository) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.findOne(ctx, query, sku)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products ORDER BY id`
	return r.listQuery(ctx, query)
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE status = $1 ORDER BY id`
	return r.listQuery(ctx, query, string(StatusActive))
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (*Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, storageErr("find", err)
	}
	return p, nil
}

func (r *PostgresRepository) listQuery(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		var status string
		err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.Packaging, &p.Supplier,
			&p.PurchasePrice, &p.SalePrice, &p.Stock, &status, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, storageErr("list scan", err)
		}
		p.Status = Status(status)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list rows", err)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	var status string
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.Packaging, &p.Supplier,
		&p.PurchasePrice, &p.SalePrice, &p.Stock, &status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Status = Status(status)
	return &p, nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
