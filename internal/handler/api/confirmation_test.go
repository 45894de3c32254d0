//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"booking-reconciler/internal/handler/api"
	resdto "booking-reconciler/internal/handler/dto/response"
	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/pkg/cookie"
	"booking-reconciler/internal/usecase"
	"booking-reconciler/internal/usecase/notify"
	"booking-reconciler/internal/usecase/resolver"
	"booking-reconciler/tests/common/builder"
	"booking-reconciler/tests/common/httptest"
	usecasemock "booking-reconciler/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConfirmationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockConfirmationUseCase
	handler  *api.ConfirmationHandler
	userID   uuid.UUID
}

func (s *ConfirmationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockConfirmationUseCase(s.mockCtrl)
	s.handler = api.NewConfirmationHandler(s.mockUC, config.NewTestConfig().Cookie)
	s.userID = uuid.New()

	// Stand-in for OptionalAuth
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		c.Next()
	}
	s.router.GET("/api/checkout/confirmation", optionalAuth, s.handler.Show)
}

func (s *ConfirmationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConfirmationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConfirmationHandlerTestSuite))
}

func (s *ConfirmationHandlerTestSuite) TestShow() {
	rm := builder.NewBookingBuilder().WithID(42).BuildReadModel()

	s.Run("success: confirmed booking is rendered and remembered in a cookie", func() {
		s.mockUC.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(&usecase.ConfirmationView{
			Status:     usecase.StatusConfirmed,
			Message:    usecase.ConfirmedMessage,
			Booking:    rm,
			ResolvedBy: resolver.StrategyExplicitBookingID,
			Notifications: notify.DispatchReport{
				notify.RolePayer:    notify.OutcomeSent,
				notify.RoleProvider: notify.OutcomeSkipped,
			},
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/checkout/confirmation?booking_id=42", nil, "")

		var body resdto.ConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(usecase.StatusConfirmed, body.Status)
		s.Require().NotNil(body.Booking)
		s.Equal(rm.Number, body.Booking.Number)
		s.Equal(rm.ProviderName, body.Booking.ProviderName)
		s.Equal(rm.TotalCents, body.Booking.TotalCents)
		s.Equal("sent", body.Notifications["payer"])
		s.Equal("skipped", body.Notifications["provider"])

		c := httptest.ExtractCookie(rec, cookie.LastBookingCookieName)
		s.Require().NotNil(c)
		s.Equal("42", c.Value)
	})

	s.Run("success: unresolved booking still answers 200 with pending details", func() {
		s.mockUC.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(usecase.PendingView()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/checkout/confirmation", nil, "")

		var body resdto.ConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(usecase.StatusPendingDetails, body.Status)
		s.Equal(usecase.PaymentReceivedMessage, body.Message)
		s.Nil(body.Booking)
		s.Nil(httptest.ExtractCookie(rec, cookie.LastBookingCookieName))
	})

	s.Run("success: nil view degrades to pending details", func() {
		s.mockUC.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/checkout/confirmation", nil, "")

		var body resdto.ConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(usecase.StatusPendingDetails, body.Status)
	})
}

func (s *ConfirmationHandlerTestSuite) TestShow_Hints() {
	testCases := []struct {
		name    string
		path    string
		cookies []*http.Cookie
		auth    string
		check   func(h resolver.Hints)
	}{
		{
			name: "numeric booking_id and order_id",
			path: "/api/checkout/confirmation?booking_id=7&order_id=9",
			check: func(h resolver.Hints) {
				s.Require().NotNil(h.BookingID)
				s.Equal(int64(7), *h.BookingID)
				s.Require().NotNil(h.OrderID)
				s.Equal(int64(9), *h.OrderID)
				s.Empty(h.BookingNumber)
			},
		},
		{
			name: "non-numeric booking_id is a booking number",
			path: "/api/checkout/confirmation?booking_id=BK-20250101-ABCDEFGH",
			check: func(h resolver.Hints) {
				s.Nil(h.BookingID)
				s.Equal("BK-20250101-ABCDEFGH", h.BookingNumber)
			},
		},
		{
			name: "explicit booking_number wins over non-numeric booking_id",
			path: "/api/checkout/confirmation?booking_id=garbage&booking_number=BK-1",
			check: func(h resolver.Hints) {
				s.Equal("BK-1", h.BookingNumber)
			},
		},
		{
			name: "payment_intent preferred over transaction_id",
			path: "/api/checkout/confirmation?payment_intent=pi_1&transaction_id=tx_2&checkout_token=tok",
			check: func(h resolver.Hints) {
				s.Equal("pi_1", h.PaymentTransactionID)
				s.Equal("tok", h.CheckoutToken)
			},
		},
		{
			name: "transaction_id alias",
			path: "/api/checkout/confirmation?transaction_id=tx_2",
			check: func(h resolver.Hints) {
				s.Equal("tx_2", h.PaymentTransactionID)
			},
		},
		{
			name: "negative ids are dropped",
			path: "/api/checkout/confirmation?order_id=-3",
			check: func(h resolver.Hints) {
				s.Nil(h.OrderID)
				s.Nil(h.BookingID)
			},
		},
		{
			name: "cookies and authenticated user",
			path: "/api/checkout/confirmation",
			cookies: []*http.Cookie{
				{Name: cookie.SessionIDCookieName, Value: "sess-1"},
				{Name: cookie.LastBookingCookieName, Value: "11"},
				{Name: cookie.LastOrderCookieName, Value: "not-a-number"},
			},
			auth: "token",
			check: func(h resolver.Hints) {
				s.Equal("sess-1", h.SessionID)
				s.Require().NotNil(h.CookieBookingID)
				s.Equal(int64(11), *h.CookieBookingID)
				s.Nil(h.CookieOrderID)
				s.Require().NotNil(h.UserID)
				s.Equal(s.userID, *h.UserID)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var got resolver.Hints
			s.mockUC.EXPECT().Confirm(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, h resolver.Hints) *usecase.ConfirmationView {
					got = h
					return usecase.PendingView()
				}).Times(1)

			rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, tc.path, nil, tc.cookies, tc.auth)

			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
			tc.check(got)
		})
	}
}
