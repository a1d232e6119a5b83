package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-pos/internal/data/entity"
	"cinema-pos/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// brokenRows delivers its prepared rows, then reports a stream error. Models
// a connection dropped mid result set.
type brokenRows struct {
	pgx.Rows
	rows [][]any
	idx  int
	err  error
}

func (r *brokenRows) Next() bool {
	if r.idx < len(r.rows) {
		r.idx++
		return true
	}
	return false
}

func (r *brokenRows) Err() error {
	if r.idx >= len(r.rows) {
		return r.err
	}
	return nil
}

func (r *brokenRows) Close() {}

func (r *brokenRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	for i, d := range dest {
		switch d := d.(type) {
		case *uuid.UUID:
			*d = row[i].(uuid.UUID)
		case **uuid.UUID:
			if row[i] != nil {
				v := row[i].(uuid.UUID)
				*d = &v
			}
		case *string:
			*d = row[i].(string)
		case *entity.SeatStatus:
			*d = row[i].(entity.SeatStatus)
		case *time.Time:
			*d = row[i].(time.Time)
		default:
			return errors.New("unsupported scan destination")
		}
	}
	return nil
}

type stubDB struct {
	database.PgxIface
	rows    pgx.Rows
	execTag pgconn.CommandTag
	execErr error
}

func (d *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return d.rows, nil
}

func (d *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return d.execTag, d.execErr
}

func TestSeatRepository_ListByScreening_StreamError(t *testing.T) {
	screeningID := uuid.New()
	now := time.Now()

	// One good row arrives before the stream dies; the truncated list must
	// not pass for a full seat map.
	db := &stubDB{rows: &brokenRows{
		rows: [][]any{
			{uuid.New(), screeningID, "A01", entity.SeatStatusAvailable, nil, now, now},
		},
		err: errors.New("unexpected EOF"),
	}}

	repo := NewSeatRepository(db, zap.NewNop())

	seats, err := repo.ListByScreening(context.Background(), screeningID)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unexpected EOF")
	assert.Nil(t, seats)
}

func TestConfigRepository_GetPricing_StreamError(t *testing.T) {
	// Two of three rows arrive before the stream dies. The failure must
	// surface as a storage fault, not as a missing key.
	db := &stubDB{rows: &brokenRows{
		rows: [][]any{
			{ConfigKeyBasePrice, "100"},
			{ConfigKeySeniorDiscount, "20"},
		},
		err: errors.New("unexpected EOF"),
	}}

	repo := NewConfigRepository(db, zap.NewNop())

	_, err := repo.GetPricing(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigKeyMissing)
	assert.ErrorContains(t, err, "unexpected EOF")
}

func TestSeatRepository_Release_ZeroRowsIsFine(t *testing.T) {
	// Releasing a seat that is already available, or held by another cart,
	// matches no rows; the second release of the same hold must also be
	// a clean no-op.
	db := &stubDB{execTag: pgconn.NewCommandTag("UPDATE 0")}
	repo := NewSeatRepository(db, zap.NewNop())

	err := repo.Release(context.Background(), uuid.New(), "A01", uuid.New())
	assert.NoError(t, err)
}
