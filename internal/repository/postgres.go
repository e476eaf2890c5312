package repository

import (
	"context"
	"fmt"
	"time"

	"estate-search/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// connect opens and pings the database; the DSN is handed to lib/pq unchanged
var connect = func(ctx context.Context, dsn string) (*sqlx.DB, error) {
	return sqlx.ConnectContext(ctx, "postgres", dsn)
}

// LoadListingsPostgres reads every row of table once and returns an in-memory store.
// The connection is closed before returning; queries never touch the database.
func LoadListingsPostgres(ctx context.Context, dsn, table string) (*ListingStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: connect to database: %v", ErrDataLoad, err)
	}
	defer db.Close()

	listings, err := selectListings(ctx, db, table)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	return &ListingStore{listings: listings}, nil
}

// selectListings runs without bind arguments, so lib/pq uses the simple query protocol
func selectListings(ctx context.Context, db *sqlx.DB, table string) ([]model.Listing, error) {
	query := fmt.Sprintf(`
		SELECT
			title, location, city, type, bedrooms, bathrooms, price
		FROM %s
		ORDER BY id
	`, pq.QuoteIdentifier(table))

	listings := []model.Listing{}
	if err := db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}
