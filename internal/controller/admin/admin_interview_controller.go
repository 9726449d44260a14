package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminInterviewController struct {
	interviewService service.InterviewService
}

func NewAdminInterviewController(interviewService service.InterviewService) *AdminInterviewController {
	return &AdminInterviewController{interviewService: interviewService}
}

// CreateInterview godoc
// @Summary (Admin) Create a new mock interview
// @Description Admin creates a mock interview with its questions and reference answers.
// @Tags Admin - Interviews
// @Accept json
// @Produce json
// @Param interview_data body dto.InterviewCreateDTO true "Interview creation data including all questions"
// @Success 201 {object} dto.InterviewResponseDTO "Interview created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/interviews [post]
func (c *AdminInterviewController) CreateInterview(ctx *gin.Context) {
	var req dto.InterviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateInterview: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	interviewResp, err := c.interviewService.CreateInterview(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateInterview: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create interview", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, interviewResp)
}
