package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-pos/internal/data/entity"
	"cinema-pos/internal/data/repository"
	"cinema-pos/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatMapService interface {
	// ListSeats returns the full grid ordered by seat number. The listing is
	// a snapshot for display; only Reserve decides who gets a seat.
	ListSeats(ctx context.Context, screeningID string) (*response.SeatMapResponse, error)

	// VacantCount backs the "Vacant seats" readout on session selection; it
	// avoids pulling the whole grid.
	VacantCount(ctx context.Context, screeningID string) (int64, error)
}

type seatMapService struct {
	repo    *repository.Repository
	timeout time.Duration
	log     *zap.Logger
}

func NewSeatMapService(repo *repository.Repository, timeout time.Duration, log *zap.Logger) SeatMapService {
	return &seatMapService{
		repo:    repo,
		timeout: timeout,
		log:     log.With(zap.String("service", "seatmap")),
	}
}

func (s *seatMapService) ListSeats(ctx context.Context, screeningID string) (*response.SeatMapResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("invalid screening ID format %s: %w", screeningID, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil || screening == nil {
		return nil, fmt.Errorf("screening %s not found", screeningID)
	}

	seats, err := s.repo.Seat.ListByScreening(ctx, id)
	if err != nil {
		s.log.Error("Failed to list seats",
			zap.Error(err),
			zap.String("screening_id", screeningID),
		)
		return nil, fmt.Errorf("list seats: %w", err)
	}

	seatResponses := make([]response.SeatResponse, len(seats))
	vacant := 0
	for i, seat := range seats {
		seatResponses[i] = response.SeatToResponse(seat)
		if seat.Status == entity.SeatStatusAvailable {
			vacant++
		}
	}

	return &response.SeatMapResponse{
		ScreeningID: screeningID,
		Seats:       seatResponses,
		VacantCount: vacant,
	}, nil
}

func (s *seatMapService) VacantCount(ctx context.Context, screeningID string) (int64, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return 0, fmt.Errorf("invalid screening ID format %s: %w", screeningID, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	count, err := s.repo.Seat.VacantCount(ctx, id)
	if err != nil {
		s.log.Error("Failed to count vacant seats",
			zap.Error(err),
			zap.String("screening_id", screeningID),
		)
		return 0, fmt.Errorf("count vacant seats: %w", err)
	}
	return count, nil
}
