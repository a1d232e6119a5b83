package repository

import (
	"context"
	"fmt"

	"cinema-pos/internal/data/entity"
	"cinema-pos/pkg/database"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Keys of the config table. Discount values are stored as percentages, the
// tax rate as a fraction.
const (
	ConfigKeyBasePrice      = "ticket_base_price"
	ConfigKeySeniorDiscount = "above_60_discount_rate"
	ConfigKeyJuniorDiscount = "below_18_discount_rate"
	ConfigKeyTaxRate        = "sales_tax_rate"
)

type ConfigRepository interface {
	// GetPricing reads the fare parameters fresh on every call; nothing is
	// cached so a manager update is visible to the next price computation.
	GetPricing(ctx context.Context) (*entity.PricingConfig, error)
	TaxRate(ctx context.Context) (decimal.Decimal, error)

	// UpdatePricing rewrites base price and both discount percentages as one
	// transaction. Any failure leaves all three rows untouched.
	UpdatePricing(ctx context.Context, basePrice, seniorPct, juniorPct decimal.Decimal) error
}

type configRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConfigRepository(db database.PgxIface, log *zap.Logger) ConfigRepository {
	return &configRepository{
		db:  db,
		log: log.With(zap.String("repository", "config")),
	}
}

var oneHundred = decimal.NewFromInt(100)

func (r *configRepository) GetPricing(ctx context.Context) (*entity.PricingConfig, error) {
	values, err := r.readValues(ctx, ConfigKeyBasePrice, ConfigKeySeniorDiscount, ConfigKeyJuniorDiscount)
	if err != nil {
		return nil, err
	}

	return &entity.PricingConfig{
		BasePrice:      values[ConfigKeyBasePrice],
		SeniorDiscount: values[ConfigKeySeniorDiscount].Div(oneHundred),
		JuniorDiscount: values[ConfigKeyJuniorDiscount].Div(oneHundred),
	}, nil
}

func (r *configRepository) TaxRate(ctx context.Context) (decimal.Decimal, error) {
	values, err := r.readValues(ctx, ConfigKeyTaxRate)
	if err != nil {
		return decimal.Zero, err
	}
	return values[ConfigKeyTaxRate], nil
}

func (r *configRepository) readValues(ctx context.Context, keys ...string) (map[string]decimal.Decimal, error) {
	query := `SELECT config_key, config_value FROM config WHERE config_key = ANY($1)`

	rows, err := r.db.Query(ctx, query, keys)
	if err != nil {
		r.log.Error("Failed to read config", zap.Error(err), zap.Strings("keys", keys))
		return nil, fmt.Errorf("read config: %w", err)
	}
	defer rows.Close()

	values := make(map[string]decimal.Decimal, len(keys))
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			r.log.Error("Failed to scan config row", zap.Error(err))
			return nil, fmt.Errorf("scan config row: %w", err)
		}

		value, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("config %s has non-numeric value %q: %w", key, raw, err)
		}
		values[key] = value
	}

	// A dropped connection must not masquerade as a missing key.
	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate config rows: %w", err)
	}

	for _, key := range keys {
		if _, ok := values[key]; !ok {
			return nil, fmt.Errorf("config %s: %w", key, ErrConfigKeyMissing)
		}
	}

	return values, nil
}

func (r *configRepository) UpdatePricing(ctx context.Context, basePrice, seniorPct, juniorPct decimal.Decimal) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin pricing update", zap.Error(err))
		return fmt.Errorf("begin pricing update: %w", err)
	}
	defer tx.Rollback(ctx)

	updates := []struct {
		key   string
		value decimal.Decimal
	}{
		{ConfigKeyBasePrice, basePrice},
		{ConfigKeySeniorDiscount, seniorPct},
		{ConfigKeyJuniorDiscount, juniorPct},
	}

	query := `UPDATE config SET config_value = $2 WHERE config_key = $1`

	for _, update := range updates {
		result, err := tx.Exec(ctx, query, update.key, update.value.String())
		if err != nil {
			r.log.Error("Failed to update config",
				zap.Error(err),
				zap.String("key", update.key),
			)
			return fmt.Errorf("update config %s: %w", update.key, err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("update config %s: %w", update.key, ErrConfigKeyMissing)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit pricing update", zap.Error(err))
		return fmt.Errorf("commit pricing update: %w", err)
	}

	r.log.Info("Pricing updated",
		zap.String("base_price", basePrice.String()),
		zap.String("senior_discount_pct", seniorPct.String()),
		zap.String("junior_discount_pct", juniorPct.String()),
	)
	return nil
}
