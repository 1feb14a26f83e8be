package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lassestilvang/taskplanner/internal/domain"
	"github.com/lassestilvang/taskplanner/internal/observability/tracing"
	"github.com/lassestilvang/taskplanner/internal/service/schedule"
)

type ScheduleHandler struct {
	scheduleService *schedule.Service
	tasks           domain.TaskRepository
	resultRecorder  domain.SuggestionRecorder
}

func NewScheduleHandler(
	scheduleService *schedule.Service,
	tasks domain.TaskRepository,
	resultRecorder domain.SuggestionRecorder,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		tasks:           tasks,
		resultRecorder:  resultRecorder,
	}
}

type suggestionsResponse struct {
	TaskID      string              `json:"task_id"`
	Suggestions []domain.Suggestion `json:"suggestions"`
}

// HandleSuggestions computes ranked time slot suggestions for a task.
// A `from` query parameter substitutes a virtual clock for testing.
func (h *ScheduleHandler) HandleSuggestions(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid task id")
		return
	}

	count := 0
	if countStr := c.Query("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed < 1 {
			respondError(c, http.StatusBadRequest, "validation_error", "count must be a positive integer")
			return
		}
		count = parsed
	}

	now := time.Now()
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid from time format, expected RFC3339")
			return
		}
		now = parsed
		slog.InfoContext(ctx, "using virtual time",
			slog.Time("virtual_now", now),
		)
	}

	task, err := h.tasks.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, "not_found", "task not found")
			return
		}
		slog.ErrorContext(ctx, "failed to load task",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to load task")
		return
	}

	suggestCtx, span := tracing.StartSuggestSpan(ctx, taskID.String(), count)
	startTime := time.Now()

	result, err := h.scheduleService.SuggestSlots(suggestCtx, task, count, now)

	duration := time.Since(startTime)

	if err != nil {
		tracing.RecordSuggestResult(span, 0, err)
		span.End()
		slog.ErrorContext(ctx, "failed to compute suggestions",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to compute suggestions")
		return
	}

	tracing.RecordSuggestResult(span, len(result.Suggestions), nil)
	span.End()

	slog.InfoContext(ctx, "suggestions computed",
		slog.String("task_id", taskID.String()),
		slog.Int("candidate_count", result.CandidateCount),
		slog.Int("available_count", result.AvailableCount),
		slog.Int("suggestion_count", len(result.Suggestions)),
	)

	if h.resultRecorder != nil {
		record := domain.SuggestionRecord{
			TaskID:          taskID.String(),
			RequestedAt:     now,
			CandidateCount:  result.CandidateCount,
			AvailableCount:  result.AvailableCount,
			SuggestionCount: len(result.Suggestions),
			TopScore:        result.TopScore(),
			Duration:        duration,
		}
		if err := h.resultRecorder.RecordSuggestions(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to record suggestion results",
				slog.String("task_id", taskID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	c.JSON(http.StatusOK, suggestionsResponse{
		TaskID:      taskID.String(),
		Suggestions: result.Suggestions,
	})
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, errorResponse{
		Error:   errType,
		Message: message,
	})
}
