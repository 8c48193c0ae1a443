package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onepte/onepte-backend/internal/apperrors"
	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/onepte/onepte-backend/internal/model"
	"github.com/onepte/onepte-backend/internal/service"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	submissionService service.SubmissionService
	historyService    service.HistoryService
}

func NewAnswerController(submissionService service.SubmissionService, historyService service.HistoryService) *AnswerController {
	return &AnswerController{
		submissionService: submissionService,
		historyService:    historyService,
	}
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Submit an answer payload for a question. Re-order and reading answers are scored immediately; SST answers return scoring_pending=true and are graded in the background (poll the history endpoint for the final score).
// @Tags Answers
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param submission body dto.SubmitAnswerRequest true "User ID plus the answer field matching the question's type"
// @Success 201 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed or out-of-range answer payload"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{question_id}/answers [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind JSON")
		details := make([]string, 0)
		for _, be := range apperrors.FromBindingError(err) {
			details = append(details, be.Field+" "+be.Message)
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: details})
		return
	}

	result, err := c.submissionService.Submit(ctx.Request.Context(), uint(questionID), req)
	if err != nil {
		c.respondSubmitError(ctx, uint(questionID), err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

func (c *AnswerController) respondSubmitError(ctx *gin.Context, questionID uint, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: validationErr.Message,
			Reason:  validationErr.Reason,
			Details: []string{validationErr.Error()},
		})
		return
	}
	if errors.Is(err, apperrors.ErrQuestionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	log.Error().Err(err).Uint("questionID", questionID).Msg("SubmitAnswer: service error")
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit answer", Details: []string{err.Error()}})
}

// GetAnswerHistory godoc
// @Summary List a user's answer history
// @Description Get a user's scored answers, newest first, optionally filtered by question type. Page size defaults to 10 and is capped at 50. SST answers still being graded appear with scoring_pending=true.
// @Tags Answers
// @Produce json
// @Param user_id path int true "User ID"
// @Param question_type query string false "Question type filter" Enums(SST, RO, RMMCQ)
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 50)"
// @Success 200 {object} dto.PagedHistoryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID, type or paging parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/answer-history [get]
func (c *AnswerController) GetAnswerHistory(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format"})
		return
	}

	var typeFilter *model.QuestionType
	if raw := ctx.Query("question_type"); raw != "" {
		questionType := model.QuestionType(raw)
		if !questionType.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unknown question type: " + raw})
			return
		}
		typeFilter = &questionType
	}

	page, err := queryInt(ctx, "page", 1)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid page parameter"})
		return
	}
	pageSize, err := queryInt(ctx, "page_size", service.DefaultHistoryPageSize)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid page_size parameter"})
		return
	}

	history, err := c.historyService.ListHistory(uint(userID), typeFilter, page, pageSize)
	if err != nil {
		log.Error().Err(err).Uint64("userID", userID).Msg("GetAnswerHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve answer history", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, history)
}

func queryInt(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
