package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onepte/onepte-backend/internal/apperrors"
	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/onepte/onepte-backend/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	adminQuestionService service.AdminQuestionService
}

func NewAdminQuestionController(adminQuestionService service.AdminQuestionService) *AdminQuestionController {
	return &AdminQuestionController{adminQuestionService: adminQuestionService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Description Create a question together with its type-specific detail payload (SST audio clips and time limit, RO paragraphs with successor positions, or RMMCQ passage and options) in one call.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question and matching detail payload"
// @Success 201 {object} dto.QuestionDetailDTO "Question created"
// @Failure 400 {object} dto.ErrorResponse "Invalid question payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: failed to bind JSON")
		details := make([]string, 0)
		for _, be := range apperrors.FromBindingError(err) {
			details = append(details, be.Field+" "+be.Message)
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: details})
		return
	}

	created, err := c.adminQuestionService.CreateQuestion(req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) || errors.Is(err, apperrors.ErrInvalidType) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
			return
		}
		log.Error().Err(err).Str("type", req.Type).Msg("Admin CreateQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}
