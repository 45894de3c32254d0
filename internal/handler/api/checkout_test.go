//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"booking-reconciler/internal/handler/api"
	resdto "booking-reconciler/internal/handler/dto/response"
	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/pkg/cookie"
	"booking-reconciler/internal/pkg/errs"
	"booking-reconciler/internal/usecase/commands"
	"booking-reconciler/tests/common/builder"
	"booking-reconciler/tests/common/httptest"
	"booking-reconciler/tests/common/testutil"
	commandsmock "booking-reconciler/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands, config.NewTestConfig().Cookie)

	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		c.Next()
	}
	s.router.POST("/api/checkout/snapshots", optionalAuth, s.handler.CaptureSnapshot)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

type testCaseCheckout struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *CheckoutHandlerTestSuite) TestCaptureSnapshot() {
	url := "/api/checkout/snapshots"
	reqBody := builder.NewCheckoutBuilder().BuildCaptureRequestDTO()
	result := &commands.CaptureSnapshotResult{
		Token:     uuid.NewString(),
		ExpiresAt: time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC),
	}

	s.Run("success: returns 201 with the snapshot token", func() {
		s.mockCommands.EXPECT().CaptureSnapshot(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, req commands.CaptureSnapshotRequest, _ *uuid.UUID) (*commands.CaptureSnapshotResult, error) {
				s.Equal(reqBody.ProviderID, req.ProviderID)
				s.Len(req.Cart, 1)
				s.Equal("parent@example.com", req.Contact.Email)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.Token, body.Token)
		s.True(result.ExpiresAt.Equal(body.ExpiresAt))
	})

	s.Run("success: cookies of a previous purchase are expired", func() {
		s.mockCommands.EXPECT().CaptureSnapshot(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, []*http.Cookie{
			{Name: cookie.LastBookingCookieName, Value: "11"},
			{Name: cookie.LastOrderCookieName, Value: "12"},
		}, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		for _, name := range []string{cookie.LastBookingCookieName, cookie.LastOrderCookieName} {
			c := httptest.ExtractCookie(rec, name)
			s.Require().NotNil(c, name)
			s.Empty(c.Value)
			s.Negative(c.MaxAge)
		}
	})

	s.Run("error: failed capture keeps the previous cookies", func() {
		s.mockCommands.EXPECT().CaptureSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("redis down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Nil(httptest.ExtractCookie(rec, cookie.LastBookingCookieName))
	})

	s.Run("success: authenticated user is attached to the snapshot", func() {
		s.mockCommands.EXPECT().CaptureSnapshot(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseCheckout{
			{name: "missing field: provider_id (required)", mutate: testutil.Field("provider_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: package_type (required)", mutate: testutil.Field("package_type", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: cart (required)", mutate: testutil.Field("cart", nil), expectCode: http.StatusBadRequest},
			{name: "empty cart", mutate: testutil.Field("cart", []any{}), expectCode: http.StatusBadRequest},
			{name: "cart item quantity 0", mutate: testutil.Field("cart", []any{
				map[string]any{"sku": "x", "name": "Lesson", "quantity": 0, "price_cents": 100},
			}), expectCode: http.StatusBadRequest},
			{name: "negative total", mutate: testutil.Field("total_cents", -1), expectCode: http.StatusBadRequest},
			{name: "invalid currency", mutate: testutil.Field("currency", "usdx"), expectCode: http.StatusBadRequest},
			{name: "invalid contact email", mutate: testutil.Field("contact.email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "missing currency is allowed", mutate: testutil.Field("currency", nil), expectCode: http.StatusCreated},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CaptureSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(result, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				err:            errs.Mark(errors.New("contact email or authenticated user is required"), errs.ErrDomainValidationFailed),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid checkout",
			},
			{
				name:           "snapshot store failure",
				err:            errors.New("redis down"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to store checkout",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CaptureSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
