package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-pos/internal/data/entity"
	"cinema-pos/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SaleRepository interface {
	// CreateTx writes the sale and its seat lines inside the caller's
	// transaction. The caller commits or rolls back.
	CreateTx(ctx context.Context, tx pgx.Tx, sale *entity.Sale, seatNumbers []string) error

	// RevenueSummary returns the running totals for the manager's revenue
	// screen. Aggregation beyond these sums is the reporting side's business.
	RevenueSummary(ctx context.Context) (revenue, tax decimal.Decimal, err error)
}

type saleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSaleRepository(db database.PgxIface, log *zap.Logger) SaleRepository {
	return &saleRepository{
		db:  db,
		log: log.With(zap.String("repository", "sale")),
	}
}

func (r *saleRepository) CreateTx(ctx context.Context, tx pgx.Tx, sale *entity.Sale, seatNumbers []string) error {
	query := `
		INSERT INTO sales (id, sale_number, screening_id, total_amount, tax_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := tx.Exec(ctx, query,
		sale.ID,
		sale.SaleNumber,
		sale.ScreeningID,
		sale.TotalAmount.StringFixed(2),
		sale.TaxAmount.StringFixed(2),
		sale.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create sale",
			zap.Error(err),
			zap.String("sale_number", sale.SaleNumber),
		)
		return fmt.Errorf("create sale %s: %w", sale.SaleNumber, err)
	}

	if len(seatNumbers) == 0 {
		return nil
	}

	// Build batch insert for the seat lines
	seatQuery := `INSERT INTO sale_seats (id, sale_id, seat_number, created_at) VALUES `
	args := []interface{}{}

	for i, seatNumber := range seatNumbers {
		if i > 0 {
			seatQuery += ", "
		}
		seatQuery += fmt.Sprintf("($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, uuid.New(), sale.ID, seatNumber, time.Now())
	}

	_, err = tx.Exec(ctx, seatQuery, args...)
	if err != nil {
		r.log.Error("Failed to create sale seats",
			zap.Error(err),
			zap.String("sale_id", sale.ID.String()),
			zap.Int("seat_count", len(seatNumbers)),
		)
		return fmt.Errorf("create sale seats: %w", err)
	}

	return nil
}

func (r *saleRepository) RevenueSummary(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(tax_amount), 0) FROM sales`

	var revenueNum, taxNum pgtype.Numeric
	err := r.db.QueryRow(ctx, query).Scan(&revenueNum, &taxNum)
	if err != nil {
		r.log.Error("Failed to sum revenue", zap.Error(err))
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum revenue: %w", err)
	}

	revenue, err := numericToDecimal(revenueNum)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("decode revenue: %w", err)
	}

	tax, err := numericToDecimal(taxNum)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("decode tax: %w", err)
	}

	return revenue, tax, nil
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Zero, nil
	}
	if n.NaN {
		return decimal.Zero, fmt.Errorf("numeric is NaN")
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}
