package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
)

// GoalService manages investment goals and evaluates their progress against
// the current portfolio value.
type GoalService struct {
	goalRepo         *repository.GoalRepository
	portfolioService *PortfolioService
}

// NewGoalService creates a new GoalService with the provided dependencies.
func NewGoalService(
	goalRepo *repository.GoalRepository,
	portfolioService *PortfolioService,
) *GoalService {
	return &GoalService{
		goalRepo:         goalRepo,
		portfolioService: portfolioService,
	}
}

// GetGoals retrieves all stored goals.
func (s *GoalService) GetGoals() ([]model.Goal, error) {
	return s.goalRepo.GetGoals()
}

// CreateGoal stores a new goal and returns it with its generated ID.
func (s *GoalService) CreateGoal(name string, targetAmount float64, targetDate string) (model.Goal, error) {
	goal := model.Goal{
		ID:           uuid.NewString(),
		Name:         name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.goalRepo.CreateGoal(goal); err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

// UpdateGoal updates an existing goal's mutable fields.
func (s *GoalService) UpdateGoal(goal model.Goal) error {
	return s.goalRepo.UpdateGoal(goal)
}

// DeleteGoal removes a goal.
func (s *GoalService) DeleteGoal(id string) error {
	return s.goalRepo.DeleteGoal(id)
}

// Progress evaluates every goal against the current total portfolio value.
// ProgressPercent is nil for a zero target amount rather than dividing by
// zero; Remaining never goes negative.
func (s *GoalService) Progress(ctx context.Context) ([]model.GoalProgress, error) {
	goals, err := s.goalRepo.GetGoals()
	if err != nil {
		return nil, err
	}

	_, totalValue, err := s.portfolioService.ValuedHoldings(ctx)
	if err != nil {
		return nil, err
	}

	progress := make([]model.GoalProgress, len(goals))
	for i, goal := range goals {
		p := model.GoalProgress{
			Goal:         goal,
			CurrentValue: totalValue,
		}

		remaining := goal.TargetAmount - totalValue
		if remaining < 0 {
			remaining = 0
		}
		p.Remaining = remaining

		if goal.TargetAmount > 0 {
			percent := totalValue / goal.TargetAmount * 100
			p.ProgressPercent = &percent
			p.Achieved = totalValue >= goal.TargetAmount
		}

		progress[i] = p
	}

	return progress, nil
}
