package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
)

// DefaultDividendSchedules maps symbols to their approximate payout months.
// The schedule is an approximation used for upcoming-dividend predictions,
// not an authoritative corporate calendar.
func DefaultDividendSchedules() map[string][]int {
	return map[string][]int{
		"3003.T": {3, 9},
		"9532.T": {3, 9},
		"HUM":    {1, 4, 7, 10},
	}
}

// DividendService manages recorded dividends and predicts upcoming payouts
// from the injected payout-month schedule and the user's current holdings.
type DividendService struct {
	dividendRepo *repository.DividendRepository
	holdingRepo  *repository.HoldingRepository
	schedules    map[string][]int
}

// NewDividendService creates a new DividendService with the provided dependencies.
func NewDividendService(
	dividendRepo *repository.DividendRepository,
	holdingRepo *repository.HoldingRepository,
	schedules map[string][]int,
) *DividendService {
	return &DividendService{
		dividendRepo: dividendRepo,
		holdingRepo:  holdingRepo,
		schedules:    schedules,
	}
}

// GetDividends retrieves all recorded dividends.
func (s *DividendService) GetDividends() ([]model.Dividend, error) {
	return s.dividendRepo.GetDividends()
}

// GetTotalDividends returns the sum of all recorded dividend amounts.
func (s *DividendService) GetTotalDividends() (float64, error) {
	return s.dividendRepo.GetTotalDividends()
}

// CreateDividend records a received dividend and returns it with its ID.
func (s *DividendService) CreateDividend(symbol string, amount float64, date, notes string) (model.Dividend, error) {
	dividend := model.Dividend{
		ID:        uuid.NewString(),
		Symbol:    symbol,
		Amount:    amount,
		Date:      date,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.dividendRepo.CreateDividend(dividend); err != nil {
		return model.Dividend{}, err
	}
	return dividend, nil
}

// DeleteDividend removes a dividend record.
func (s *DividendService) DeleteDividend(id string) error {
	return s.dividendRepo.DeleteDividend(id)
}

// UpcomingDividends predicts payouts over the next twelve months for held
// symbols that have a known schedule. Each scheduled month yields one entry
// dated the 25th (an approximation), sorted ascending by date. Symbols
// without a schedule simply contribute nothing.
func (s *DividendService) UpcomingDividends(now time.Time) ([]model.UpcomingDividend, error) {
	holdings, err := s.holdingRepo.GetHoldings()
	if err != nil {
		return nil, err
	}

	horizon := now.AddDate(1, 0, 0)
	upcoming := []model.UpcomingDividend{}

	for _, h := range holdings {
		months, ok := s.schedules[h.Symbol]
		if !ok {
			continue
		}

		for _, month := range months {
			for yearOffset := 0; yearOffset <= 1; yearOffset++ {
				year := now.Year() + yearOffset
				date := time.Date(year, time.Month(month), 25, 0, 0, 0, 0, time.UTC)

				if date.After(now) && date.Before(horizon) {
					upcoming = append(upcoming, model.UpcomingDividend{
						Symbol:   h.Symbol,
						Name:     h.Name,
						Date:     date.Format("2006-01-02"),
						Month:    month,
						Year:     year,
						Quantity: h.Quantity,
					})
				}
			}
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})
	return upcoming, nil
}
