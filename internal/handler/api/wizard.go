package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/handler/httperr"
	"stayops/internal/infra"
	"stayops/internal/usecase"

	wizarddomain "stayops/internal/domain/wizard"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizard usecase.WizardCommands
}

func NewWizardHandler(wizard usecase.WizardCommands) *WizardHandler {
	return &WizardHandler{wizard: wizard}
}

// @Summary Start wizard session
// @Description Open a new booking creation wizard session
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.SessionStateResponse
// @Failure 401 {object} map[string]string
// @Router /wizard/sessions [post]
func (h *WizardHandler) StartSession(c *gin.Context) {
	state, err := h.wizard.StartSession(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSessionState(state))
}

// @Summary Resume wizard session
// @Description Rebuild a wizard session from a persisted booking
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ResumeRequest true "Booking to resume"
// @Success 201 {object} resdto.SessionStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /wizard/sessions/resume [post]
func (h *WizardHandler) Resume(c *gin.Context) {
	var req reqdto.ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	state, err := h.wizard.Resume(c.Request.Context(), req.BookingID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSessionState(state))
}

// @Summary Get wizard state
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 404 {object} httperr.Response
// @Router /wizard/sessions/{id} [get]
func (h *WizardHandler) GetState(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	state, err := h.wizard.GetState(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Abandon wizard session
// @Description Discard the session and its unpersisted draft state
// @Tags wizard
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /wizard/sessions/{id} [delete]
func (h *WizardHandler) Abandon(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.wizard.Abandon(c.Request.Context(), sessionID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Submit booking header
// @Description Validate and persist step 1, then advance to rooms
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.HeaderRequest true "Header form"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /wizard/sessions/{id}/header [put]
func (h *WizardHandler) SubmitHeader(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.HeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	form, err := req.ToForm()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	state, err := h.wizard.SubmitHeader(c.Request.Context(), sessionID, form)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Add room
// @Description Persist a new room on the rooms step
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.RoomRequest true "Room form"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 422 {object} httperr.Response
// @Router /wizard/sessions/{id}/rooms [post]
func (h *WizardHandler) AddRoom(c *gin.Context) {
	h.submitRoom(c, nil)
}

// @Summary Update room
// @Description Re-persist an existing room in place
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param ref path int true "Room index"
// @Param request body reqdto.RoomRequest true "Room form"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 422 {object} httperr.Response
// @Router /wizard/sessions/{id}/rooms/{ref} [put]
func (h *WizardHandler) UpdateRoom(c *gin.Context) {
	index, ok := h.indexParam(c)
	if !ok {
		return
	}
	h.submitRoom(c, &index)
}

func (h *WizardHandler) submitRoom(c *gin.Context, index *int) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	form, err := req.ToForm()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	state, err := h.wizard.SubmitRoom(c.Request.Context(), sessionID, index, form, req.Advance)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Remove room
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param ref path int true "Room index"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 404 {object} httperr.Response
// @Router /wizard/sessions/{id}/rooms/{ref} [delete]
func (h *WizardHandler) RemoveRoom(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	index, ok := h.indexParam(c)
	if !ok {
		return
	}
	state, err := h.wizard.RemoveRoom(c.Request.Context(), sessionID, index)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Submit nightly rates
// @Description Persist the nightly rate breakdown for one room
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param ref path string true "Room temp ID"
// @Param request body reqdto.RoomDaysRequest true "Day entries"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /wizard/sessions/{id}/rooms/{ref}/days [post]
func (h *WizardHandler) SubmitRoomDays(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	tempID := c.Param("ref")

	var req reqdto.RoomDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	days, err := req.ToDays()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	state, err := h.wizard.SubmitRoomDays(c.Request.Context(), sessionID, tempID, days, req.Advance)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Add service
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.ServiceRequest true "Service form"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 422 {object} httperr.Response
// @Router /wizard/sessions/{id}/services [post]
func (h *WizardHandler) AddService(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	state, err := h.wizard.SubmitService(c.Request.Context(), sessionID, req.ToForm(), req.Advance)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Remove service
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param index path int true "Service index"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 404 {object} httperr.Response
// @Router /wizard/sessions/{id}/services/{index} [delete]
func (h *WizardHandler) RemoveService(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid index", nil)
		return
	}
	state, err := h.wizard.RemoveService(c.Request.Context(), sessionID, index)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Submit guarantee
// @Description Persist the payment guarantee for the booking
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.GuaranteeRequest true "Guarantee form"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 422 {object} httperr.Response
// @Router /wizard/sessions/{id}/guarantee [put]
func (h *WizardHandler) SubmitGuarantee(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.GuaranteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	state, err := h.wizard.SubmitGuarantee(c.Request.Context(), sessionID, req.ToForm())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Add guest
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.GuestRequest true "Guest form"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 422 {object} httperr.Response
// @Router /wizard/sessions/{id}/guests [post]
func (h *WizardHandler) AddGuest(c *gin.Context) {
	h.submitGuest(c, nil)
}

// @Summary Update guest
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param index path int true "Guest index"
// @Param request body reqdto.GuestRequest true "Guest form"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 422 {object} httperr.Response
// @Router /wizard/sessions/{id}/guests/{index} [put]
func (h *WizardHandler) UpdateGuest(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid index", nil)
		return
	}
	h.submitGuest(c, &index)
}

func (h *WizardHandler) submitGuest(c *gin.Context, index *int) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	state, err := h.wizard.SubmitGuest(c.Request.Context(), sessionID, index, req.ToForm(), req.Advance)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Remove guest
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param index path int true "Guest index"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 404 {object} httperr.Response
// @Router /wizard/sessions/{id}/guests/{index} [delete]
func (h *WizardHandler) RemoveGuest(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid index", nil)
		return
	}
	state, err := h.wizard.RemoveGuest(c.Request.Context(), sessionID, index)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Skip current step
// @Description Advance past an optional step without persisting it
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 409 {object} httperr.Response
// @Router /wizard/sessions/{id}/skip [post]
func (h *WizardHandler) Skip(c *gin.Context) {
	h.navigate(c, h.wizard.Skip)
}

// @Summary Step back
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionStateResponse
// @Router /wizard/sessions/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	h.navigate(c, h.wizard.Back)
}

func (h *WizardHandler) navigate(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*usecase.SessionState, error)) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	state, err := op(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Jump to step
// @Description Move directly to an already reachable step
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.GotoRequest true "Target step"
// @Success 200 {object} resdto.SessionStateResponse
// @Failure 409 {object} httperr.Response
// @Router /wizard/sessions/{id}/goto [post]
func (h *WizardHandler) Goto(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req reqdto.GotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	state, err := h.wizard.Goto(c.Request.Context(), sessionID, wizarddomain.Step(req.Step))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionState(state))
}

// @Summary Complete booking
// @Description Finish the wizard from the review step and close the session
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.CompleteResponse
// @Failure 409 {object} httperr.Response
// @Router /wizard/sessions/{id}/complete [post]
func (h *WizardHandler) Complete(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	bookingID, err := h.wizard.Complete(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CompleteResponse{BookingID: bookingID})
}

func (h *WizardHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *WizardHandler) indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("ref"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room index", nil)
		return 0, false
	}
	return index, true
}

// respondError maps coordinator errors onto HTTP statuses. Validation errors
// return the field map; gateway failures surface the remote message verbatim.
func (h *WizardHandler) respondError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Step validation failed", validationErr.Fields)
		return
	}

	// Checked before the generic gateway branch: a resume fetch failure
	// carries a gateway error in its chain but keeps its own message.
	if errors.Is(err, usecase.ErrAggregateLoadFailed) {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to load booking for resume", nil)
		return
	}

	var gatewayErr infra.GatewayError
	if errors.As(err, &gatewayErr) {
		msg := "Channel manager request failed"
		if gatewayErr.RemoteMessage != "" {
			msg = gatewayErr.RemoteMessage
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, msg, gin.H{"kind": string(gatewayErr.Kind)})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Wizard session not found", nil)
	case errors.Is(err, usecase.ErrSessionClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Wizard session was closed", nil)
	case errors.Is(err, usecase.ErrStepInFlight):
		httperr.AbortWithError(c, http.StatusConflict, err, "A submission for this step is already in progress", nil)
	case errors.Is(err, usecase.ErrStepNotSkippable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Current step cannot be skipped", nil)
	case errors.Is(err, usecase.ErrStepUnreachable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Step is not reachable yet", nil)
	case errors.Is(err, usecase.ErrNotAtReview):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking can only be completed from the review step", nil)
	case errors.Is(err, wizarddomain.ErrIndexOutOfRange):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No entry at that index", nil)
	case errors.Is(err, wizarddomain.ErrUnknownTempID):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown room reference", nil)
	case errors.Is(err, wizarddomain.ErrBookingIDRequired),
		errors.Is(err, wizarddomain.ErrRoomNotResolved):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		var invariantErr *wizarddomain.InvariantError
		if errors.As(err, &invariantErr) {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal state error", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
