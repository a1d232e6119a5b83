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

type ScreeningRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, screening *entity.Screening) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Screening, error)

	// FindByNaturalKey resolves the (movie title, day, start time) triple the
	// desktop screens still work with to the surrogate screening row.
	FindByNaturalKey(ctx context.Context, movieTitle, showDay, startTime string) (*entity.Screening, error)
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

func (r *screeningRepository) CreateTx(ctx context.Context, tx pgx.Tx, screening *entity.Screening) error {
	query := `
		INSERT INTO screenings (id, movie_id, show_day, start_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := tx.Exec(ctx, query,
		screening.ID,
		screening.MovieID,
		screening.ShowDay,
		screening.StartTime,
		screening.CreatedAt,
		screening.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
			zap.String("show_day", screening.ShowDay),
			zap.String("start_time", screening.StartTime),
		)
		return fmt.Errorf("create screening: %w", err)
	}

	return nil
}

func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	query := `
		SELECT id, movie_id, show_day, start_time, created_at, updated_at, deleted_at
		FROM screenings
		WHERE id = $1 AND deleted_at IS NULL
	`

	var screening entity.Screening
	err := r.db.QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.MovieID,
		&screening.ShowDay,
		&screening.StartTime,
		&screening.CreatedAt,
		&screening.UpdatedAt,
		&screening.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by ID %s: %w", id.String(), err)
	}

	return &screening, nil
}

func (r *screeningRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Screening, error) {
	query := `
		SELECT id, movie_id, show_day, start_time, created_at, updated_at
		FROM screenings
		WHERE movie_id = $1 AND deleted_at IS NULL
		ORDER BY show_day, start_time
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find screenings by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find screenings by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var screenings []*entity.Screening
	for rows.Next() {
		var screening entity.Screening
		err := rows.Scan(
			&screening.ID,
			&screening.MovieID,
			&screening.ShowDay,
			&screening.StartTime,
			&screening.CreatedAt,
			&screening.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, &screening)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate screening rows: %w", err)
	}

	return screenings, nil
}

func (r *screeningRepository) FindByNaturalKey(ctx context.Context, movieTitle, showDay, startTime string) (*entity.Screening, error) {
	query := `
		SELECT s.id, s.movie_id, s.show_day, s.start_time, s.created_at, s.updated_at
		FROM screenings s
		JOIN movies m ON m.id = s.movie_id
		WHERE LOWER(m.title) = LOWER($1) AND s.show_day = $2 AND s.start_time = $3
		  AND s.deleted_at IS NULL AND m.deleted_at IS NULL
	`

	var screening entity.Screening
	err := r.db.QueryRow(ctx, query, movieTitle, showDay, startTime).Scan(
		&screening.ID,
		&screening.MovieID,
		&screening.ShowDay,
		&screening.StartTime,
		&screening.CreatedAt,
		&screening.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by natural key",
			zap.Error(err),
			zap.String("movie_title", movieTitle),
			zap.String("show_day", showDay),
			zap.String("start_time", startTime),
		)
		return nil, fmt.Errorf("find screening %s %s %s: %w", movieTitle, showDay, startTime, err)
	}

	return &screening, nil
}
