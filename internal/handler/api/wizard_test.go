//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"stayops/internal/domain/wizard"
	"stayops/internal/handler/api"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/infra"
	"stayops/internal/usecase"
	"stayops/tests/common/httptest"
	"stayops/tests/common/testutil"
	usecasemock "stayops/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockWizard  *usecasemock.MockWizardCommands
	handler     *api.WizardHandler
	sessionID   uuid.UUID
	sessionBase string
}

func (s *WizardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWizard = usecasemock.NewMockWizardCommands(s.mockCtrl)
	s.handler = api.NewWizardHandler(s.mockWizard)

	s.sessionID = uuid.New()
	s.sessionBase = "/api/wizard/sessions/" + s.sessionID.String()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("staff_id", uuid.New())
		c.Next()
	}

	sessions := s.router.Group("/api/wizard/sessions")
	sessions.Use(authMiddleware)
	{
		sessions.POST("", s.handler.StartSession)
		sessions.POST("/resume", s.handler.Resume)
		sessions.GET("/:id", s.handler.GetState)
		sessions.DELETE("/:id", s.handler.Abandon)
		sessions.PUT("/:id/header", s.handler.SubmitHeader)
		sessions.POST("/:id/rooms", s.handler.AddRoom)
		sessions.PUT("/:id/rooms/:ref", s.handler.UpdateRoom)
		sessions.DELETE("/:id/rooms/:ref", s.handler.RemoveRoom)
		sessions.POST("/:id/rooms/:ref/days", s.handler.SubmitRoomDays)
		sessions.POST("/:id/services", s.handler.AddService)
		sessions.DELETE("/:id/services/:index", s.handler.RemoveService)
		sessions.PUT("/:id/guarantee", s.handler.SubmitGuarantee)
		sessions.POST("/:id/guests", s.handler.AddGuest)
		sessions.PUT("/:id/guests/:index", s.handler.UpdateGuest)
		sessions.DELETE("/:id/guests/:index", s.handler.RemoveGuest)
		sessions.POST("/:id/skip", s.handler.Skip)
		sessions.POST("/:id/back", s.handler.Back)
		sessions.POST("/:id/goto", s.handler.Goto)
		sessions.POST("/:id/complete", s.handler.Complete)
	}
}

func (s *WizardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardHandlerSuite(t *testing.T) {
	suite.Run(t, new(WizardHandlerTestSuite))
}

// sessionState builds the minimal coordinator view the mocks hand back.
func (s *WizardHandlerTestSuite) sessionState(step wizard.Step) *usecase.SessionState {
	return &usecase.SessionState{
		SessionID:        s.sessionID,
		CurrentStep:      step,
		HighestReachable: step,
		Draft: wizard.Draft{
			RoomIDs:     map[string]string{},
			RoomDays:    map[string][]wizard.RoomDay{},
			CurrentStep: step,
			Completed:   map[wizard.Step]struct{}{},
		},
	}
}

func headerBody() map[string]any {
	return map[string]any{
		"property_id": uuid.NewString(),
		"status":      "new",
		"arrival":     "2026-09-10",
		"departure":   "2026-09-13",
		"amount":      "450.00",
		"currency":    "EUR",
		"adults":      2,
	}
}

func roomBody() map[string]any {
	return map[string]any{
		"room_type_id": uuid.NewString(),
		"rate_plan_id": uuid.NewString(),
		"check_in":     "2026-09-10",
		"check_out":    "2026-09-13",
		"adults":       2,
		"amount":       "150.00",
		"advance":      true,
	}
}

// ================================================================================
// TestStartSession
// ================================================================================

func (s *WizardHandlerTestSuite) TestStartSession() {
	url := "/api/wizard/sessions"

	s.Run("success: returns 201 Created with the new session", func() {
		s.mockWizard.EXPECT().StartSession(gomock.Any()).
			Return(s.sessionState(wizard.StepHeader), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.SessionStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(s.sessionID, response.SessionID)
		s.Equal(int(wizard.StepHeader), response.CurrentStep)
		s.Equal("header", response.CurrentStepName)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestResume
// ================================================================================

func (s *WizardHandlerTestSuite) TestResume() {
	url := "/api/wizard/sessions/resume"
	bookingID := uuid.NewString()
	body := map[string]any{"booking_id": bookingID}

	s.Run("success: returns 201 Created with the rebuilt session", func() {
		state := s.sessionState(wizard.StepReview)
		state.BookingID = bookingID
		s.mockWizard.EXPECT().Resume(gomock.Any(), bookingID).Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var response resdto.SessionStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bookingID, response.BookingID)
		s.Equal(int(wizard.StepReview), response.CurrentStep)
	})

	s.Run("error: 400 Bad Request without a booking identifier", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 502 Bad Gateway when the aggregate cannot be loaded", func() {
		s.mockWizard.EXPECT().Resume(gomock.Any(), bookingID).
			Return(nil, usecase.ErrAggregateLoadFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to load booking for resume")
	})

	s.Run("error: load failure wins over the gateway error in its chain", func() {
		remoteErr := infra.WrapGatewayErr(infra.KindNotFound, "booking lookup failed", "Booking not found", nil)
		s.mockWizard.EXPECT().Resume(gomock.Any(), bookingID).
			Return(nil, fmt.Errorf("%w: %w", usecase.ErrAggregateLoadFailed, remoteErr)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to load booking for resume")
	})
}

// ================================================================================
// TestGetState / TestAbandon
// ================================================================================

func (s *WizardHandlerTestSuite) TestGetState() {
	s.Run("success: returns 200 OK with the session state", func() {
		s.mockWizard.EXPECT().GetState(gomock.Any(), s.sessionID).
			Return(s.sessionState(wizard.StepRooms), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.sessionBase, nil, "bearer-token")

		var response resdto.SessionStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("rooms", response.CurrentStepName)
	})

	s.Run("error: 400 Bad Request for invalid session UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/wizard/sessions/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session ID format")
	})

	s.Run("error: 404 Not Found for missing session", func() {
		s.mockWizard.EXPECT().GetState(gomock.Any(), s.sessionID).
			Return(nil, usecase.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.sessionBase, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Wizard session not found")
	})
}

func (s *WizardHandlerTestSuite) TestAbandon() {
	s.Run("success: returns 204 No Content", func() {
		s.mockWizard.EXPECT().Abandon(gomock.Any(), s.sessionID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.sessionBase, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing session", func() {
		s.mockWizard.EXPECT().Abandon(gomock.Any(), s.sessionID).
			Return(usecase.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.sessionBase, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Wizard session not found")
	})
}

// ================================================================================
// TestSubmitHeader
// ================================================================================

func (s *WizardHandlerTestSuite) TestSubmitHeader() {
	url := s.sessionBase + "/header"

	s.Run("success: returns 200 OK and advances to rooms", func() {
		state := s.sessionState(wizard.StepRooms)
		state.BookingID = uuid.NewString()
		s.mockWizard.EXPECT().
			SubmitHeader(gomock.Any(), s.sessionID, gomock.Any()).
			Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, headerBody(), "bearer-token")

		var response resdto.SessionStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(state.BookingID, response.BookingID)
		s.Equal(int(wizard.StepRooms), response.CurrentStep)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: property_id", mutate: testutil.Field("property_id", nil)},
			{name: "missing field: arrival", mutate: testutil.Field("arrival", nil)},
			{name: "missing field: amount", mutate: testutil.Field("amount", nil)},
			{name: "bad date format", mutate: testutil.Field("arrival", "10/09/2026")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), headerBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 Unprocessable Entity with the field map", func() {
		s.mockWizard.EXPECT().
			SubmitHeader(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, &usecase.ValidationError{Fields: wizard.FieldErrors{
				"amount": "amount must be a non-negative number with at most two decimals",
			}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, headerBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Step validation failed")

		var body struct {
			Detail map[string]string `json:"detail"`
		}
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Contains(body.Detail, "amount")
	})

	s.Run("error: 502 Bad Gateway surfaces the remote message verbatim", func() {
		remoteErr := infra.WrapGatewayErr(infra.KindRemoteRejected, "channel API rejected the request", "Property not active", nil)
		s.mockWizard.EXPECT().
			SubmitHeader(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, remoteErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, headerBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Property not active")

		var body struct {
			Detail map[string]string `json:"detail"`
		}
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("REMOTE_REJECTED", body.Detail["kind"])
	})

	s.Run("error: 409 Conflict while a submission is in flight", func() {
		s.mockWizard.EXPECT().
			SubmitHeader(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, usecase.ErrStepInFlight).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, headerBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already in progress")
	})
}

// ================================================================================
// TestRooms
// ================================================================================

func (s *WizardHandlerTestSuite) TestRooms() {
	s.Run("success: add room passes no index and the advance flag", func() {
		s.mockWizard.EXPECT().
			SubmitRoom(gomock.Any(), s.sessionID, gomock.Nil(), gomock.Any(), true).
			Return(s.sessionState(wizard.StepRoomDays), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.sessionBase+"/rooms", roomBody(), "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: update room passes the path index", func() {
		s.mockWizard.EXPECT().
			SubmitRoom(gomock.Any(), s.sessionID, gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ any, _ uuid.UUID, index *int, _ wizard.RoomForm, _ bool) (*usecase.SessionState, error) {
				s.Require().NotNil(index)
				s.Equal(1, *index)
				return s.sessionState(wizard.StepRooms), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.sessionBase+"/rooms/1", roomBody(), "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for non-numeric room index", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.sessionBase+"/rooms/abc", roomBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room index")
	})

	s.Run("error: 404 Not Found when removing an out-of-range room", func() {
		s.mockWizard.EXPECT().
			RemoveRoom(gomock.Any(), s.sessionID, 5).
			Return(nil, wizard.ErrIndexOutOfRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.sessionBase+"/rooms/5", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No entry at that index")
	})
}

// ================================================================================
// TestSubmitRoomDays
// ================================================================================

func (s *WizardHandlerTestSuite) TestSubmitRoomDays() {
	url := s.sessionBase + "/rooms/temp-0/days"
	body := map[string]any{
		"days": []map[string]any{
			{"date": "2026-09-10", "price": "150.00"},
			{"date": "2026-09-11", "price": "150.00"},
			{"date": "2026-09-12", "price": "150.00"},
		},
		"advance": true,
	}

	s.Run("success: passes the temp identifier from the path", func() {
		s.mockWizard.EXPECT().
			SubmitRoomDays(gomock.Any(), s.sessionID, "temp-0", gomock.Len(3), true).
			Return(s.sessionState(wizard.StepServices), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for an empty day list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"days": []any{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 Conflict when the room is not resolved yet", func() {
		s.mockWizard.EXPECT().
			SubmitRoomDays(gomock.Any(), s.sessionID, "temp-0", gomock.Any(), true).
			Return(nil, wizard.ErrRoomNotResolved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 404 Not Found for an unknown room reference", func() {
		s.mockWizard.EXPECT().
			SubmitRoomDays(gomock.Any(), s.sessionID, "temp-0", gomock.Any(), true).
			Return(nil, wizard.ErrUnknownTempID).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Unknown room reference")
	})
}

// ================================================================================
// TestGuarantee
// ================================================================================

func (s *WizardHandlerTestSuite) TestSubmitGuarantee() {
	url := s.sessionBase + "/guarantee"
	body := map[string]any{
		"card_type":    "visa",
		"card_number":  "4111111111111111",
		"card_holder":  "Jamie Harper",
		"expiry_month": "09",
		"expiry_year":  "2029",
	}

	s.Run("success: card number comes back masked", func() {
		state := s.sessionState(wizard.StepGuests)
		state.Draft.Guarantee = &wizard.GuaranteeDraft{
			ServerID: uuid.NewString(),
			GuaranteeForm: wizard.GuaranteeForm{
				CardType:    "visa",
				CardNumber:  "4111111111111111",
				CardHolder:  "Jamie Harper",
				ExpiryMonth: "09",
				ExpiryYear:  "2029",
			},
		}
		s.mockWizard.EXPECT().
			SubmitGuarantee(gomock.Any(), s.sessionID, gomock.Any()).
			Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")

		var response resdto.SessionStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Draft.Guarantee)
		s.Equal("************1111", response.Draft.Guarantee.CardNumber)
	})

	s.Run("error: 400 Bad Request for missing card fields", func() {
		incomplete := testutil.DtoMap(s.T(), body, testutil.Field("card_number", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, incomplete, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestNavigation
// ================================================================================

func (s *WizardHandlerTestSuite) TestNavigation() {
	s.Run("success: skip advances past an optional step", func() {
		s.mockWizard.EXPECT().Skip(gomock.Any(), s.sessionID).
			Return(s.sessionState(wizard.StepServices), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.sessionBase+"/skip", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 Conflict skipping a mandatory step", func() {
		s.mockWizard.EXPECT().Skip(gomock.Any(), s.sessionID).
			Return(nil, usecase.ErrStepNotSkippable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.sessionBase+"/skip", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot be skipped")
	})

	s.Run("success: back returns the previous step", func() {
		s.mockWizard.EXPECT().Back(gomock.Any(), s.sessionID).
			Return(s.sessionState(wizard.StepRooms), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.sessionBase+"/back", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 Conflict jumping to an unreachable step", func() {
		s.mockWizard.EXPECT().Goto(gomock.Any(), s.sessionID, wizard.StepGuests).
			Return(nil, usecase.ErrStepUnreachable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.sessionBase+"/goto", map[string]any{"step": 6}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not reachable")
	})
}

// ================================================================================
// TestComplete
// ================================================================================

func (s *WizardHandlerTestSuite) TestComplete() {
	url := s.sessionBase + "/complete"

	s.Run("success: returns 200 OK with the booking identifier", func() {
		bookingID := uuid.NewString()
		s.mockWizard.EXPECT().Complete(gomock.Any(), s.sessionID).
			Return(bookingID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.CompleteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.BookingID)
	})

	s.Run("error: 409 Conflict away from the review step", func() {
		s.mockWizard.EXPECT().Complete(gomock.Any(), s.sessionID).
			Return("", usecase.ErrNotAtReview).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "review step")
	})

	s.Run("error: 409 Conflict when the session closed mid-flight", func() {
		s.mockWizard.EXPECT().Complete(gomock.Any(), s.sessionID).
			Return("", usecase.ErrSessionClosed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "closed")
	})

	s.Run("error: maps unknown errors to 500", func() {
		s.mockWizard.EXPECT().Complete(gomock.Any(), s.sessionID).
			Return("", errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
