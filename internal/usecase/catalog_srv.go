package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-pos/internal/data/entity"
	"cinema-pos/internal/data/repository"
	"cinema-pos/internal/dto/request"
	"cinema-pos/internal/dto/response"
	"cinema-pos/pkg/database"
	"cinema-pos/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	// Cashier lookups
	SearchMovies(ctx context.Context, titleSubstring, genre string) ([]response.MovieResponse, error)
	ListGenres(ctx context.Context) ([]string, error)
	ScreeningsFor(ctx context.Context, movieTitle string) ([]response.ScreeningResponse, error)
	GetScreening(ctx context.Context, screeningID string) (*response.ScreeningResponse, error)
	FindScreening(ctx context.Context, movieTitle, showDay, startTime string) (*response.ScreeningResponse, error)

	// Admin catalog maintenance
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	ScheduleScreening(ctx context.Context, req *request.ScheduleScreeningRequest) (*response.ScreeningResponse, error)
}

type catalogService struct {
	db      database.PgxIface
	repo    *repository.Repository
	timeout time.Duration
	log     *zap.Logger
}

func NewCatalogService(db database.PgxIface, repo *repository.Repository, timeout time.Duration, log *zap.Logger) CatalogService {
	return &catalogService{
		db:      db,
		repo:    repo,
		timeout: timeout,
		log:     log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) SearchMovies(ctx context.Context, titleSubstring, genre string) ([]response.MovieResponse, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	movies, err := s.repo.Movie.Search(ctx, titleSubstring, genre)
	if err != nil {
		s.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("title_substring", titleSubstring),
			zap.String("genre", genre),
		)
		return nil, fmt.Errorf("search movies: %w", err)
	}

	results := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		results[i] = response.MovieToResponse(movie)
	}

	return results, nil
}

func (s *catalogService) ListGenres(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	genres, err := s.repo.Movie.ListGenres(ctx)
	if err != nil {
		s.log.Error("Failed to list genres", zap.Error(err))
		return nil, fmt.Errorf("list genres: %w", err)
	}

	return genres, nil
}

func (s *catalogService) ScreeningsFor(ctx context.Context, movieTitle string) ([]response.ScreeningResponse, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	movie, err := s.repo.Movie.FindByTitle(ctx, movieTitle)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s not found", movieTitle)
	}

	screenings, err := s.repo.Screening.FindByMovieID(ctx, movie.ID)
	if err != nil {
		s.log.Error("Failed to get screenings",
			zap.Error(err),
			zap.String("movie_title", movieTitle),
		)
		return nil, fmt.Errorf("screenings for %s: %w", movieTitle, err)
	}

	results := make([]response.ScreeningResponse, len(screenings))
	for i, screening := range screenings {
		results[i] = response.ScreeningToResponse(screening)
	}

	return results, nil
}

func (s *catalogService) GetScreening(ctx context.Context, screeningID string) (*response.ScreeningResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("invalid screening ID format %s: %w", screeningID, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get screening: %w", err)
	}
	if screening == nil {
		return nil, fmt.Errorf("screening %s not found", screeningID)
	}

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

func (s *catalogService) FindScreening(ctx context.Context, movieTitle, showDay, startTime string) (*response.ScreeningResponse, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	screening, err := s.repo.Screening.FindByNaturalKey(ctx, movieTitle, showDay, startTime)
	if err != nil {
		return nil, fmt.Errorf("find screening: %w", err)
	}
	if screening == nil {
		return nil, fmt.Errorf("screening %s %s %s not found", movieTitle, showDay, startTime)
	}

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

func (s *catalogService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:     req.Title,
		Genre:     req.Genre,
		Summary:   req.Summary,
		PosterURL: req.PosterURL,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("movie %s not found", movieID)
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Genre != nil {
		movie.Genre = *req.Genre
	}
	if req.Summary != nil {
		movie.Summary = *req.Summary
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) ScheduleScreening(ctx context.Context, req *request.ScheduleScreeningRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Schedule screening validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("movie %s not found", req.MovieID)
	}

	existing, err := s.repo.Screening.FindByNaturalKey(ctx, movie.Title, req.ShowDay, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("check existing screening: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("screening %s %s %s already scheduled", movie.Title, req.ShowDay, req.StartTime)
	}

	now := time.Now()
	screening := &entity.Screening{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:   movieID,
		ShowDay:   req.ShowDay,
		StartTime: req.StartTime,
	}

	seats := make([]*entity.ScreeningSeat, 0, req.SeatRows*req.SeatsPerRow)
	for row := 0; row < req.SeatRows; row++ {
		for col := 1; col <= req.SeatsPerRow; col++ {
			seats = append(seats, &entity.ScreeningSeat{
				BaseNoDelete: entity.BaseNoDelete{
					ID:        uuid.New(),
					CreatedAt: now,
					UpdatedAt: now,
				},
				ScreeningID: screening.ID,
				// Zero-padded so lexicographic ordering follows the row:
				// A02 before A10.
				SeatNumber:  fmt.Sprintf("%c%02d", 'A'+row, col),
				Status:      entity.SeatStatusAvailable,
			})
		}
	}

	// Screening and its seat block land together or not at all
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin schedule screening: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Screening.CreateTx(ctx, tx, screening); err != nil {
		return nil, fmt.Errorf("create screening: %w", err)
	}
	if err := s.repo.Seat.CreateBatchTx(ctx, tx, seats); err != nil {
		return nil, fmt.Errorf("seed seats: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit schedule screening: %w", err)
	}

	s.log.Info("Screening scheduled",
		zap.String("screening_id", screening.ID.String()),
		zap.String("movie_title", movie.Title),
		zap.String("show_day", req.ShowDay),
		zap.String("start_time", req.StartTime),
		zap.Int("seat_count", len(seats)),
	)

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}
