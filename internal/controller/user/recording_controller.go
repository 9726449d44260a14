package user

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lorikeets/internal/dto"
	"github.com/lshigami/Lorikeets/internal/service"
	"github.com/lshigami/Lorikeets/internal/transcript"
	"github.com/rs/zerolog/log"
)

type RecordingController struct {
	interviewService service.InterviewService
	recordingService service.RecordingService
	answerService    service.AnswerService
}

func NewRecordingController(is service.InterviewService, rs service.RecordingService, as service.AnswerService) *RecordingController {
	return &RecordingController{
		interviewService: is,
		recordingService: rs,
		answerService:    as,
	}
}

// GetAllInterviews godoc
// @Summary (User) List all available mock interviews
// @Tags User - Interviews
// @Produce json
// @Success 200 {array} dto.InterviewSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [get]
func (c *RecordingController) GetAllInterviews(ctx *gin.Context) {
	interviews, err := c.interviewService.GetAllInterviews()
	if err != nil {
		log.Error().Err(err).Msg("User GetAllInterviews: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve interviews", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, interviews)
}

// GetInterviewDetails godoc
// @Summary (User) Get details of a specific interview
// @Description Get full details of a mock interview, including its questions.
// @Tags User - Interviews
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Interview ID format"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{interview_id} [get]
func (c *RecordingController) GetInterviewDetails(ctx *gin.Context) {
	interviewID, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Interview ID format"})
		return
	}
	details, err := c.interviewService.GetInterviewDetails(uint(interviewID))
	if err != nil {
		log.Warn().Err(err).Uint64("interviewID", interviewID).Msg("User GetInterviewDetails: Interview not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// StartRecording godoc
// @Summary (User) Start a recording session for one question
// @Description Opens a fresh session and begins transcript capture. Any prior transcript or grade belongs to the prior session.
// @Tags User - Recordings
// @Accept json
// @Produce json
// @Param session_data body dto.StartRecordingDTO true "User, interview and question identifiers"
// @Success 201 {object} dto.RecordingSessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /recordings [post]
func (c *RecordingController) StartRecording(ctx *gin.Context) {
	var req dto.StartRecordingDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartRecording: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	session, err := c.recordingService.StartSession(req)
	if err != nil {
		log.Warn().Err(err).Uint("questionID", req.QuestionID).Msg("StartRecording: Service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// PushFragment godoc
// @Summary (User) Push one speech fragment into a recording session
// @Description The speech source delivers fragments in order; final fragments extend the answer, interim fragments update the live preview.
// @Tags User - Recordings
// @Accept json
// @Produce json
// @Param session_id path string true "Recording session ID"
// @Param fragment body dto.FragmentDTO true "Recognized speech fragment"
// @Success 200 {object} dto.RecordingSessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session is not recording"
// @Router /recordings/{session_id}/fragments [post]
func (c *RecordingController) PushFragment(ctx *gin.Context) {
	var req dto.FragmentDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	fragment := transcript.Fragment{Text: req.Text, Final: req.Final, ReceivedAt: time.Now()}
	session, err := c.recordingService.PushFragment(ctx.Param("session_id"), fragment)
	if err != nil {
		c.respondSessionError(ctx, err, "PushFragment")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// StopRecording godoc
// @Summary (User) Stop recording and trigger evaluation
// @Description Finalizes the transcript. Answers shorter than 30 characters (trimmed) are rejected with a validation notice and never reach the AI; otherwise grading runs asynchronously and the session reports "evaluating" until the grade lands.
// @Tags User - Recordings
// @Produce json
// @Param session_id path string true "Recording session ID"
// @Success 200 {object} dto.RecordingSessionDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session is not recording"
// @Router /recordings/{session_id}/stop [post]
func (c *RecordingController) StopRecording(ctx *gin.Context) {
	session, err := c.recordingService.StopRecording(ctx.Param("session_id"))
	if err != nil {
		c.respondSessionError(ctx, err, "StopRecording")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// RestartRecording godoc
// @Summary (User) Record the answer again
// @Description Discards the transcript and any grade, then starts a fresh capture. A grading call still in flight is ignored when it returns.
// @Tags User - Recordings
// @Produce json
// @Param session_id path string true "Recording session ID"
// @Success 200 {object} dto.RecordingSessionDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "A save is in progress"
// @Router /recordings/{session_id}/restart [post]
func (c *RecordingController) RestartRecording(ctx *gin.Context) {
	session, err := c.recordingService.RestartRecording(ctx.Param("session_id"))
	if err != nil {
		c.respondSessionError(ctx, err, "RestartRecording")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// SaveAnswer godoc
// @Summary (User) Save the graded answer
// @Description Persists the graded attempt unless this user already answered this question. Duplicates are reported as informational, store failures leave the session ready for a retry.
// @Tags User - Recordings
// @Produce json
// @Param session_id path string true "Recording session ID"
// @Success 200 {object} dto.SaveResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "A save is already in progress"
// @Router /recordings/{session_id}/save [post]
func (c *RecordingController) SaveAnswer(ctx *gin.Context) {
	result, err := c.recordingService.SaveAnswer(ctx.Param("session_id"))
	if err != nil {
		c.respondSessionError(ctx, err, "SaveAnswer")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetSession godoc
// @Summary (User) Get the current state of a recording session
// @Tags User - Recordings
// @Produce json
// @Param session_id path string true "Recording session ID"
// @Success 200 {object} dto.RecordingSessionDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /recordings/{session_id} [get]
func (c *RecordingController) GetSession(ctx *gin.Context) {
	session, err := c.recordingService.GetSession(ctx.Param("session_id"))
	if err != nil {
		c.respondSessionError(ctx, err, "GetSession")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// GetInterviewAnswers godoc
// @Summary (User) List a user's saved answers for an interview
// @Tags User - Answers
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Param user_id query string true "User ID"
// @Success 200 {array} dto.UserAnswerDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Interview ID or missing user_id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{interview_id}/answers [get]
func (c *RecordingController) GetInterviewAnswers(ctx *gin.Context) {
	interviewID, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Interview ID format"})
		return
	}
	userID := ctx.Query("user_id")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "user_id query parameter is required"})
		return
	}

	answers, err := c.answerService.GetAnswersForInterview(userID, uint(interviewID))
	if err != nil {
		log.Error().Err(err).Uint64("interviewID", interviewID).Str("userID", userID).Msg("GetInterviewAnswers: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve answers", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

func (c *RecordingController) respondSessionError(ctx *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotRecording), errors.Is(err, service.ErrSaveInFlight):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("op", op).Msg("Recording session operation failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
	}
}
