package performance

import (
	"context"
	"database/sql"
	"fmt"

	"shopping-samples/internal/entities"
)

// queries holds the statements of one SQL dialect.
type queries struct {
	insert      string
	findByRunID string
}

var mysqlQueries = queries{
	insert: `
		INSERT INTO product_performance (run_id, offer_id, title, impressions, clicks, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
	findByRunID: `
		SELECT
			run_id,
			offer_id,
			title,
			impressions,
			clicks,
			created_at
		FROM product_performance
		WHERE run_id = ?
		ORDER BY clicks DESC
	`,
}

var postgresQueries = queries{
	insert: `
		INSERT INTO product_performance (run_id, offer_id, title, impressions, clicks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
	findByRunID: `
		SELECT
			run_id,
			offer_id,
			title,
			impressions,
			clicks,
			created_at
		FROM product_performance
		WHERE run_id = $1
		ORDER BY clicks DESC
	`,
}

type performanceRepository struct {
	db *sql.DB
	q  queries
}

func NewPerformanceRepository(db *sql.DB, driver string) *performanceRepository {
	q := mysqlQueries
	if driver == "pgx" {
		q = postgresQueries
	}
	return &performanceRepository{
		db: db,
		q:  q,
	}
}

// SaveProductPerformance stores every row of one report run in a single
// transaction.
func (r *performanceRepository) SaveProductPerformance(ctx context.Context, runID string, rows []entities.ProductPerformance) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, r.q.insert)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx, runID, row.OfferID, row.Title, row.Impressions, row.Clicks, row.CreatedAt)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert row for offer %s: %w", row.OfferID, err)
		}
	}

	return tx.Commit()
}

func (r *performanceRepository) FindByRunID(ctx context.Context, runID string) ([]entities.ProductPerformance, error) {
	rows, err := r.db.QueryContext(ctx, r.q.findByRunID, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.ProductPerformance
	for rows.Next() {
		var p entities.ProductPerformance
		var title sql.NullString
		err := rows.Scan(
			&p.RunID,
			&p.OfferID,
			&title,
			&p.Impressions,
			&p.Clicks,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if title.Valid {
			p.Title = title.String
		}
		out = append(out, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
