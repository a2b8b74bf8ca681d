package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// GoalRepository provides data access methods for the goal table.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository with the provided database connection.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// GetGoals retrieves all goals, oldest first.
func (s *GoalRepository) GetGoals() ([]model.Goal, error) {
	query := `
          SELECT id, name, target_amount, target_date, created_at
          FROM goal
          ORDER BY created_at ASC
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}

	for rows.Next() {
		var g model.Goal
		var createdAtStr string

		err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.TargetDate, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal table results: %w", err)
		}

		g.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}

		goals = append(goals, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal table: %w", err)
	}

	return goals, nil
}

// CreateGoal inserts a new goal.
func (s *GoalRepository) CreateGoal(g model.Goal) error {
	query := `
          INSERT INTO goal (id, name, target_amount, target_date, created_at)
          VALUES (?, ?, ?, ?, ?)
      `

	_, err := s.db.Exec(query,
		g.ID, g.Name, g.TargetAmount, g.TargetDate,
		g.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	return nil
}

// UpdateGoal updates the mutable fields of an existing goal.
func (s *GoalRepository) UpdateGoal(g model.Goal) error {
	query := `
          UPDATE goal
          SET name = ?, target_amount = ?, target_date = ?
          WHERE id = ?
      `

	result, err := s.db.Exec(query, g.Name, g.TargetAmount, g.TargetDate, g.ID)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}

// DeleteGoal removes a goal by ID.
func (s *GoalRepository) DeleteGoal(id string) error {
	result, err := s.db.Exec(`DELETE FROM goal WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}
