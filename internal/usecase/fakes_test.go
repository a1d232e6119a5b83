package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"cinema-pos/internal/data/entity"
	"cinema-pos/internal/data/repository"
	"cinema-pos/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// fakeSeatRepo keeps seat state in memory with the same single-winner
// semantics as the conditional UPDATE.
type fakeSeatRepo struct {
	mu    sync.Mutex
	seats map[string]*fakeSeat // keyed by screeningID/seatNumber

	commitErr  error
	commitCnt  int
	releaseCnt int
}

type fakeSeat struct {
	status entity.SeatStatus
	holdID uuid.UUID
}

func newFakeSeatRepo() *fakeSeatRepo {
	return &fakeSeatRepo{seats: make(map[string]*fakeSeat)}
}

func seatKey(screeningID uuid.UUID, seatNumber string) string {
	return screeningID.String() + "/" + seatNumber
}

func (f *fakeSeatRepo) addSeat(screeningID uuid.UUID, seatNumber string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seats[seatKey(screeningID, seatNumber)] = &fakeSeat{status: entity.SeatStatusAvailable}
}

func (f *fakeSeatRepo) status(screeningID uuid.UUID, seatNumber string) entity.SeatStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seats[seatKey(screeningID, seatNumber)].status
}

func (f *fakeSeatRepo) CreateBatchTx(ctx context.Context, tx pgx.Tx, seats []*entity.ScreeningSeat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, seat := range seats {
		f.seats[seatKey(seat.ScreeningID, seat.SeatNumber)] = &fakeSeat{status: seat.Status}
	}
	return nil
}

func (f *fakeSeatRepo) ListByScreening(ctx context.Context, screeningID uuid.UUID) ([]*entity.ScreeningSeat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prefix := screeningID.String() + "/"
	var seats []*entity.ScreeningSeat
	for key, seat := range f.seats {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		seats = append(seats, &entity.ScreeningSeat{
			ScreeningID: screeningID,
			SeatNumber:  strings.TrimPrefix(key, prefix),
			Status:      seat.status,
		})
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].SeatNumber < seats[j].SeatNumber })
	return seats, nil
}

func (f *fakeSeatRepo) VacantCount(ctx context.Context, screeningID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prefix := screeningID.String() + "/"
	var count int64
	for key, seat := range f.seats {
		if strings.HasPrefix(key, prefix) && seat.status == entity.SeatStatusAvailable {
			count++
		}
	}
	return count, nil
}

func (f *fakeSeatRepo) Reserve(ctx context.Context, screeningID uuid.UUID, seatNumber string, holdID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	seat, ok := f.seats[seatKey(screeningID, seatNumber)]
	if !ok {
		return fmt.Errorf("seat %s: %w", seatNumber, repository.ErrSeatNotFound)
	}
	if seat.status != entity.SeatStatusAvailable {
		return fmt.Errorf("seat %s: %w", seatNumber, repository.ErrSeatAlreadySold)
	}
	seat.status = entity.SeatStatusReserved
	seat.holdID = holdID
	return nil
}

func (f *fakeSeatRepo) Release(ctx context.Context, screeningID uuid.UUID, seatNumber string, holdID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releaseCnt++

	seat, ok := f.seats[seatKey(screeningID, seatNumber)]
	if !ok {
		return nil
	}
	if seat.status == entity.SeatStatusReserved && seat.holdID == holdID {
		seat.status = entity.SeatStatusAvailable
		seat.holdID = uuid.Nil
	}
	return nil
}

func (f *fakeSeatRepo) CommitSeatsTx(ctx context.Context, tx pgx.Tx, screeningID uuid.UUID, holdID uuid.UUID, seatNumbers []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commitCnt++

	if f.commitErr != nil {
		return f.commitErr
	}
	for _, seatNumber := range seatNumbers {
		seat, ok := f.seats[seatKey(screeningID, seatNumber)]
		if !ok || seat.status != entity.SeatStatusReserved || seat.holdID != holdID {
			return fmt.Errorf("commit seats: seat %s not held", seatNumber)
		}
	}
	for _, seatNumber := range seatNumbers {
		seat := f.seats[seatKey(screeningID, seatNumber)]
		seat.status = entity.SeatStatusSold
		seat.holdID = uuid.Nil
	}
	return nil
}

type fakeConfigRepo struct {
	pricing *entity.PricingConfig
	taxRate decimal.Decimal

	pricingErr error
	updateErr  error
}

func (f *fakeConfigRepo) GetPricing(ctx context.Context) (*entity.PricingConfig, error) {
	if f.pricingErr != nil {
		return nil, f.pricingErr
	}
	cfg := *f.pricing
	return &cfg, nil
}

func (f *fakeConfigRepo) TaxRate(ctx context.Context) (decimal.Decimal, error) {
	return f.taxRate, nil
}

func (f *fakeConfigRepo) UpdatePricing(ctx context.Context, basePrice, seniorPct, juniorPct decimal.Decimal) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.pricing = &entity.PricingConfig{
		BasePrice:      basePrice,
		SeniorDiscount: seniorPct.Div(decimal.NewFromInt(100)),
		JuniorDiscount: juniorPct.Div(decimal.NewFromInt(100)),
	}
	return nil
}

type fakeSaleRepo struct {
	mu        sync.Mutex
	sales     []*entity.Sale
	createErr error
}

func (f *fakeSaleRepo) CreateTx(ctx context.Context, tx pgx.Tx, sale *entity.Sale, seatNumbers []string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	f.sales = append(f.sales, sale)
	f.mu.Unlock()
	return nil
}

func (f *fakeSaleRepo) RevenueSummary(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	revenue, tax := decimal.Zero, decimal.Zero
	for _, sale := range f.sales {
		revenue = revenue.Add(sale.TotalAmount)
		tax = tax.Add(sale.TaxAmount)
	}
	return revenue, tax, nil
}

// fakeTx satisfies pgx.Tx for the methods checkout touches; everything else
// panics if reached.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	database.PgxIface
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	d.tx = &fakeTx{}
	return d.tx, nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
