package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
	"github.com/maouM-cmd/portfolio-dashboard/internal/api/response"
	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
	"github.com/maouM-cmd/portfolio-dashboard/internal/validation"
)

// GoalHandler handles HTTP requests for investment goal endpoints.
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler with the provided service dependency.
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// Goals handles GET requests to retrieve all goals.
//
// Endpoint: GET /api/goals
// Response: 200 OK with array of Goal
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) Goals(w http.ResponseWriter, _ *http.Request) {
	goals, err := h.goalService.GetGoals()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoals.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goals)
}

// Progress handles GET requests for every goal evaluated against the current
// portfolio value.
//
// Endpoint: GET /api/goals/progress
// Response: 200 OK with array of GoalProgress
// Error: 500 Internal Server Error if evaluation fails
func (h *GoalHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.goalService.Progress(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to evaluate goal progress", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, progress)
}

// CreateGoal handles POST requests to store a new goal.
//
// Endpoint: POST /api/goals
// Request Body: CreateGoalRequest (name, targetAmount, targetDate)
// Response: 201 Created with Goal
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal, err := h.goalService.CreateGoal(req.Name, req.TargetAmount, req.TargetDate)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, goal)
}

// UpdateGoal handles PUT requests to update a goal's mutable fields.
//
// Endpoint: PUT /api/goals/{uuid}
// Request Body: UpdateGoalRequest (all fields optional)
// Response: 200 OK with updated Goal
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if update fails
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goals, err := h.goalService.GetGoals()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoals.Error(), err.Error())
		return
	}

	for _, goal := range goals {
		if goal.ID != goalID {
			continue
		}

		if req.Name != nil {
			goal.Name = *req.Name
		}
		if req.TargetAmount != nil {
			goal.TargetAmount = *req.TargetAmount
		}
		if req.TargetDate != nil {
			goal.TargetDate = *req.TargetDate
		}

		if err := h.goalService.UpdateGoal(goal); err != nil {
			response.RespondError(w, http.StatusInternalServerError, "failed to update goal", err.Error())
			return
		}

		response.RespondJSON(w, http.StatusOK, goal)
		return
	}

	response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), "")
}

// DeleteGoal handles DELETE requests to remove a goal.
//
// Endpoint: DELETE /api/goals/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if goal not found
// Error: 500 Internal Server Error if deletion fails
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	if err := h.goalService.DeleteGoal(goalID); err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
