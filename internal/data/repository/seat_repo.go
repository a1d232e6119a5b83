package repository

import (
	"context"
	"fmt"

	"cinema-pos/internal/data/entity"
	"cinema-pos/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	CreateBatchTx(ctx context.Context, tx pgx.Tx, seats []*entity.ScreeningSeat) error
	ListByScreening(ctx context.Context, screeningID uuid.UUID) ([]*entity.ScreeningSeat, error)
	VacantCount(ctx context.Context, screeningID uuid.UUID) (int64, error)

	// Reserve places a tentative hold on one seat. The conditional UPDATE is
	// the only authority on availability: of any number of concurrent callers
	// exactly one sees nil, the rest see ErrSeatAlreadySold.
	Reserve(ctx context.Context, screeningID uuid.UUID, seatNumber string, holdID uuid.UUID) error

	// Release reverses a tentative hold. Releasing a seat that is already
	// available, or held by a different cart, is a no-op.
	Release(ctx context.Context, screeningID uuid.UUID, seatNumber string, holdID uuid.UUID) error

	// CommitSeatsTx finalizes reserved seats as sold inside the caller's
	// transaction. Every seat must currently be reserved by holdID; a row
	// count mismatch is an error and the caller must roll back.
	CommitSeatsTx(ctx context.Context, tx pgx.Tx, screeningID uuid.UUID, holdID uuid.UUID, seatNumbers []string) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) CreateBatchTx(ctx context.Context, tx pgx.Tx, seats []*entity.ScreeningSeat) error {
	if len(seats) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO screening_seats (id, screening_id, seat_number, status, created_at, updated_at) VALUES `
	args := []interface{}{}

	for i, seat := range seats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			i*6+1, i*6+2, i*6+3, i*6+4, i*6+5, i*6+6)

		args = append(args,
			seat.ID,
			seat.ScreeningID,
			seat.SeatNumber,
			seat.Status,
			seat.CreatedAt,
			seat.UpdatedAt,
		)
	}

	_, err := tx.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch seats",
			zap.Error(err),
			zap.Int("count", len(seats)),
		)
		return fmt.Errorf("create batch seats: %w", err)
	}

	return nil
}

func (r *seatRepository) ListByScreening(ctx context.Context, screeningID uuid.UUID) ([]*entity.ScreeningSeat, error) {
	query := `
		SELECT id, screening_id, seat_number, status, hold_id, created_at, updated_at
		FROM screening_seats
		WHERE screening_id = $1
		ORDER BY seat_number
	`

	rows, err := r.db.Query(ctx, query, screeningID)
	if err != nil {
		r.log.Error("Failed to list seats",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
		return nil, fmt.Errorf("list seats for screening %s: %w", screeningID.String(), err)
	}
	defer rows.Close()

	var seats []*entity.ScreeningSeat
	for rows.Next() {
		var seat entity.ScreeningSeat
		err := rows.Scan(
			&seat.ID,
			&seat.ScreeningID,
			&seat.SeatNumber,
			&seat.Status,
			&seat.HoldID,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	return seats, nil
}

func (r *seatRepository) VacantCount(ctx context.Context, screeningID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM screening_seats WHERE screening_id = $1 AND status = 'available'`

	var count int64
	err := r.db.QueryRow(ctx, query, screeningID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count vacant seats",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
		return 0, fmt.Errorf("count vacant seats for screening %s: %w", screeningID.String(), err)
	}

	return count, nil
}

func (r *seatRepository) Reserve(ctx context.Context, screeningID uuid.UUID, seatNumber string, holdID uuid.UUID) error {
	query := `
		UPDATE screening_seats
		SET status = 'reserved', hold_id = $3, updated_at = NOW()
		WHERE screening_id = $1 AND seat_number = $2 AND status = 'available'
	`

	result, err := r.db.Exec(ctx, query, screeningID, seatNumber, holdID)
	if err != nil {
		r.log.Error("Failed to reserve seat",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
			zap.String("seat_number", seatNumber),
		)
		return fmt.Errorf("reserve seat %s: %w", seatNumber, err)
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	// The seat was not available. Distinguish a lost race from a bad seat
	// number so the caller can surface the right outcome.
	checkQuery := `SELECT status FROM screening_seats WHERE screening_id = $1 AND seat_number = $2`

	var status entity.SeatStatus
	err = r.db.QueryRow(ctx, checkQuery, screeningID, seatNumber).Scan(&status)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("seat %s of screening %s: %w", seatNumber, screeningID.String(), ErrSeatNotFound)
	}
	if err != nil {
		r.log.Error("Failed to check seat status",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
			zap.String("seat_number", seatNumber),
		)
		return fmt.Errorf("check seat %s status: %w", seatNumber, err)
	}

	r.log.Info("Seat reservation lost race",
		zap.String("screening_id", screeningID.String()),
		zap.String("seat_number", seatNumber),
		zap.String("status", string(status)),
	)
	return fmt.Errorf("seat %s: %w", seatNumber, ErrSeatAlreadySold)
}

func (r *seatRepository) Release(ctx context.Context, screeningID uuid.UUID, seatNumber string, holdID uuid.UUID) error {
	// Only rows held by this cart match; releasing an available seat or a
	// seat held by someone else affects zero rows and that is fine.
	query := `
		UPDATE screening_seats
		SET status = 'available', hold_id = NULL, updated_at = NOW()
		WHERE screening_id = $1 AND seat_number = $2 AND status = 'reserved' AND hold_id = $3
	`

	_, err := r.db.Exec(ctx, query, screeningID, seatNumber, holdID)
	if err != nil {
		r.log.Error("Failed to release seat",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
			zap.String("seat_number", seatNumber),
		)
		return fmt.Errorf("release seat %s: %w", seatNumber, err)
	}

	return nil
}

func (r *seatRepository) CommitSeatsTx(ctx context.Context, tx pgx.Tx, screeningID uuid.UUID, holdID uuid.UUID, seatNumbers []string) error {
	if len(seatNumbers) == 0 {
		return nil
	}

	query := `
		UPDATE screening_seats
		SET status = 'sold', hold_id = NULL, updated_at = NOW()
		WHERE screening_id = $1 AND hold_id = $2 AND status = 'reserved' AND seat_number = ANY($3)
	`

	result, err := tx.Exec(ctx, query, screeningID, holdID, seatNumbers)
	if err != nil {
		r.log.Error("Failed to commit seats",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
			zap.Int("seat_count", len(seatNumbers)),
		)
		return fmt.Errorf("commit seats: %w", err)
	}

	if result.RowsAffected() != int64(len(seatNumbers)) {
		return fmt.Errorf("commit seats: %d of %d seats still held by cart %s",
			result.RowsAffected(), len(seatNumbers), holdID.String())
	}

	return nil
}
