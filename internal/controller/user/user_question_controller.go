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

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// GetAllQuestions godoc
// @Summary List questions
// @Description Get all questions, optionally filtered by question type (SST, RO or RMMCQ). Detail payloads are not included.
// @Tags Questions
// @Produce json
// @Param question_type query string false "Question type filter" Enums(SST, RO, RMMCQ)
// @Success 200 {array} dto.QuestionSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown question type"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (c *QuestionController) GetAllQuestions(ctx *gin.Context) {
	var typeFilter *model.QuestionType
	if raw := ctx.Query("question_type"); raw != "" {
		questionType := model.QuestionType(raw)
		if !questionType.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unknown question type: " + raw})
			return
		}
		typeFilter = &questionType
	}

	questions, err := c.questionService.GetAllQuestions(typeFilter)
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestionDetails godoc
// @Summary Get question details
// @Description Get one question with its type-specific payload (audio clips, paragraphs or passage and options). Answer keys are never included.
// @Tags Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{question_id} [get]
func (c *QuestionController) GetQuestionDetails(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	detail, err := c.questionService.GetQuestionDetails(ctx.Request.Context(), uint(questionID))
	if err != nil {
		if errors.Is(err, apperrors.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("questionID", questionID).Msg("GetQuestionDetails: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve question details", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
