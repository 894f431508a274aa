package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SAP-F-2025/quiz-session-service/internal/quiz"
	"github.com/SAP-F-2025/quiz-session-service/internal/services"
	"github.com/SAP-F-2025/quiz-session-service/internal/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SessionHandler struct {
	BaseHandler
	sessionService services.SessionService
	exportService  services.ExportService
}

func NewSessionHandler(
	sessionService services.SessionService,
	exportService services.ExportService,
	logger utils.Logger,
) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionService: sessionService,
		exportService:  exportService,
	}
}

// StartSession starts a quiz session
// @Summary Start session
// @Description Starts a session from a stored quiz (quiz_id) or an inline question list (quiz)
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body services.StartSessionRequest true "Quiz source"
// @Success 201 {object} SuccessResponse{data=models.SessionView}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req services.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid_payload", "Invalid request payload", err, err.Error())
		return
	}

	h.LogRequest(c, "Starting quiz session", "quiz_id", req.QuizID, "inline_questions", len(req.Quiz))

	view, err := h.sessionService.Start(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, "Session started", view, "session_id", view.SessionID)
}

// GetSession returns the current question view
// @Summary Get session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=models.SessionView}
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := ParseSessionIDParam(c, "id")
	if id == "" {
		return
	}

	view, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Session retrieved", view)
}

// DeleteSession discards a session
// @Summary Delete session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id := ParseSessionIDParam(c, "id")
	if id == "" {
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogInfo(c, "Session deleted", "session_id", id)
	c.Status(http.StatusNoContent)
}

// SelectAnswer records the option chosen for the current question
// @Summary Select answer
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answer body services.SelectAnswerRequest true "Selected option"
// @Success 200 {object} SuccessResponse{data=models.SessionView}
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/answer [post]
func (h *SessionHandler) SelectAnswer(c *gin.Context) {
	id := ParseSessionIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.SelectAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid_payload", "Invalid request payload", err, err.Error())
		return
	}

	view, err := h.sessionService.SelectAnswer(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Answer recorded", view)
}

// Advance moves to the next question, or submits on the last one
// @Summary Advance
// @Description The current question must be answered. On the last question this completes the session.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=models.SessionView}
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/advance [post]
func (h *SessionHandler) Advance(c *gin.Context) {
	id := ParseSessionIDParam(c, "id")
	if id == "" {
		return
	}

	view, err := h.sessionService.Advance(c.Request.Context(), id, true)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	message := "Moved to next question"
	if view.Completed {
		message = "Quiz submitted"
	}
	h.RespondWithSuccess(c, http.StatusOK, message, view)
}

// Retreat moves to the previous question
// @Summary Retreat
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=models.SessionView}
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/retreat [post]
func (h *SessionHandler) Retreat(c *gin.Context) {
	id := ParseSessionIDParam(c, "id")
	if id == "" {
		return
	}

	view, err := h.sessionService.Retreat(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Moved to previous question", view)
}

// JumpTo moves to an arbitrary question
// @Summary Jump to question
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param jump body services.JumpRequest true "Target index (0-based)"
// @Success 200 {object} SuccessResponse{data=models.SessionView}
// @Failure 400 {object} ErrorResponse
// @Router /sessions/{id}/jump [post]
func (h *SessionHandler) JumpTo(c *gin.Context) {
	id := ParseSessionIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.JumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid_payload", "Invalid request payload", err, err.Error())
		return
	}

	view, err := h.sessionService.JumpTo(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Moved to question", view, "index", view.CurrentIndex)
}

// Finish completes the session from any question
// @Summary Finish
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=models.SessionView}
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/finish [post]
func (h *SessionHandler) Finish(c *gin.Context) {
	id := ParseSessionIDParam(c, "id")
	if id == "" {
		return
	}

	view, err := h.sessionService.Finish(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Quiz submitted", view)
}

// Reset clears all answers and starts over on the same quiz
// @Summary Reset
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=models.SessionView}
// @Router /sessions/{id}/reset [post]
func (h *SessionHandler) Reset(c *gin.Context) {
	id := ParseSessionIDParam(c, "id")
	if id == "" {
		return
	}

	view, err := h.sessionService.Reset(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Session reset", view)
}

// GetResult returns the score, breakdown and feedback tier
// @Summary Get result
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse{data=models.ResultView}
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/result [get]
func (h *SessionHandler) GetResult(c *gin.Context) {
	id := ParseSessionIDParam(c, "id")
	if id == "" {
		return
	}

	result, err := h.sessionService.Result(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Result retrieved", result)
}

// ExportResult downloads the result as an Excel workbook
// @Summary Export result
// @Tags sessions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Session ID"
// @Success 200 {file} file
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/result/export [get]
func (h *SessionHandler) ExportResult(c *gin.Context) {
	id := ParseSessionIDParam(c, "id")
	if id == "" {
		return
	}

	data, err := h.exportService.ExportResult(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="quiz-result-%s.xlsx"`, id))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// handleServiceError maps service errors to HTTP responses
func (h *SessionHandler) handleServiceError(c *gin.Context, err error) {
	status, code, message := classifyServiceError(err)
	if status >= http.StatusInternalServerError {
		h.RespondWithError(c, status, code, message, err)
		return
	}
	h.RespondWithError(c, status, code, message, err, services.FormatError(err))
}

func classifyServiceError(err error) (int, string, string) {
	// Handle custom error types first
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		return http.StatusBadRequest, "validation_failed", "Validation failed"
	}

	var businessRuleError *services.BusinessRuleError
	if errors.As(err, &businessRuleError) {
		return http.StatusUnprocessableEntity, businessRuleError.Rule, businessRuleError.Message
	}

	var indexError *quiz.IndexError
	if errors.As(err, &indexError) {
		return http.StatusBadRequest, "invalid_index", "Question index out of range"
	}

	var stateError *quiz.StateError
	if errors.As(err, &stateError) {
		return http.StatusConflict, "invalid_state", stateError.Error()
	}

	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found", "Session not found"
	case errors.Is(err, services.ErrQuizNotFound):
		return http.StatusNotFound, "quiz_not_found", "Quiz not found"
	case errors.Is(err, services.ErrResultNotReady):
		return http.StatusConflict, "result_not_ready", "Quiz has not been submitted yet"
	case services.IsValidation(err):
		return http.StatusBadRequest, "validation_failed", err.Error()
	case services.IsNotFound(err):
		return http.StatusNotFound, "not_found", "Resource not found"
	case services.IsConflict(err):
		return http.StatusConflict, "conflict", err.Error()
	default:
		return http.StatusInternalServerError, "internal_error", "Internal server error"
	}
}
