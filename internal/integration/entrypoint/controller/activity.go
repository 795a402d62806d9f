// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/activity-log/backend/internal/application/usecase/activity"
	domainerror "github.com/activity-log/backend/internal/domain/error"
	"github.com/activity-log/backend/internal/integration/entrypoint/dto"
)

// ActivityController handles activity endpoints.
type ActivityController struct {
	createUseCase *activity.CreateActivityUseCase
	listUseCase   *activity.ListActivitiesUseCase
	deleteUseCase *activity.DeleteActivityUseCase
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(
	createUseCase *activity.CreateActivityUseCase,
	listUseCase *activity.ListActivitiesUseCase,
	deleteUseCase *activity.DeleteActivityUseCase,
) *ActivityController {
	return &ActivityController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /activities requests.
func (c *ActivityController) Create(ctx *gin.Context) {
	var req dto.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), activity.CreateActivityInput{
		Name:       req.Name,
		Notes:      req.Notes,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		OccurredAt: req.OccurredAt,
	})
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	response, err := dto.ToActivityResponse(output.Activity)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /activities requests. Optional "from" and "to" query
// parameters accept either RFC3339 variant.
func (c *ActivityController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), activity.ListActivitiesInput{
		From: ctx.Query("from"),
		To:   ctx.Query("to"),
	})
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	responses := make([]dto.ActivityResponse, len(output.Activities))
	for i, record := range output.Activities {
		response, err := dto.ToActivityResponse(record)
		if err != nil {
			respondWithError(ctx, err)
			return
		}
		responses[i] = response
	}

	ctx.JSON(http.StatusOK, dto.ActivityListResponse{Activities: responses})
}

// Delete handles DELETE /activities/:id requests.
func (c *ActivityController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid activity ID",
			Details: err.Error(),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), activity.DeleteActivityInput{ID: id}); err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// respondWithError maps domain errors onto HTTP responses. Date errors are
// the caller's fault; record store errors are not.
func respondWithError(ctx *gin.Context, err error) {
	var dateErr *domainerror.DateError
	if errors.As(err, &dateErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dateErr.Message,
			Code:  string(dateErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Activity not found",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}
