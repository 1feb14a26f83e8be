package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lassestilvang/taskplanner/internal/domain"
	"github.com/lassestilvang/taskplanner/internal/observability/tracing"
	"github.com/lassestilvang/taskplanner/internal/service/recurrence"
)

type CompleteHandler struct {
	tasks   domain.TaskRepository
	spawner *recurrence.Spawner
}

func NewCompleteHandler(tasks domain.TaskRepository, spawner *recurrence.Spawner) *CompleteHandler {
	return &CompleteHandler{
		tasks:   tasks,
		spawner: spawner,
	}
}

type completeResponse struct {
	Task           *domain.Task `json:"task"`
	NextOccurrence *domain.Task `json:"next_occurrence"`
}

// HandleComplete marks a task completed and, when the task recurs,
// spawns its next occurrence.
func (h *CompleteHandler) HandleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid task id")
		return
	}

	completed, err := h.tasks.MarkCompleted(ctx, taskID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			respondError(c, http.StatusNotFound, "not_found", "task not found")
		case errors.Is(err, domain.ErrTaskAlreadyCompleted):
			respondError(c, http.StatusConflict, "conflict", "task is already completed")
		default:
			slog.ErrorContext(ctx, "failed to complete task",
				slog.String("task_id", taskID.String()),
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusInternalServerError, "processing_error", "failed to complete task")
		}
		return
	}

	slog.InfoContext(ctx, "task completed",
		slog.String("task_id", taskID.String()),
	)

	patternType := ""
	if completed.Recurrence != nil {
		patternType = string(completed.Recurrence.Type)
	}

	spawnCtx, span := tracing.StartSpawnSpan(ctx, taskID.String(), patternType)

	next, err := h.spawner.SpawnNext(spawnCtx, completed)
	if err != nil {
		tracing.RecordSpawnResult(span, false, err)
		span.End()
		slog.ErrorContext(ctx, "failed to spawn next occurrence",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to spawn next occurrence")
		return
	}

	tracing.RecordSpawnResult(span, next != nil, nil)
	span.End()

	if next != nil {
		slog.InfoContext(ctx, "next occurrence spawned",
			slog.String("task_id", taskID.String()),
			slog.String("occurrence_id", next.ID.String()),
			slog.Time("occurrence_date", *next.Date),
		)
	}

	c.JSON(http.StatusOK, completeResponse{
		Task:           completed,
		NextOccurrence: next,
	})
}
