//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"stock-reservation/internal/domain/reservation"
	"stock-reservation/internal/handler/api"
	resdto "stock-reservation/internal/handler/dto/response"
	"stock-reservation/internal/pkg/errs"
	"stock-reservation/internal/usecase/queries"
	"stock-reservation/tests/common/builder"
	"stock-reservation/tests/common/httptest"
	commandsmock "stock-reservation/tests/mock/commands"
	queriesmock "stock-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.POST("/reservations/:id/commit", s.handler.Commit)
	s.router.POST("/reservations/:id/cancel", s.handler.Cancel)
	s.router.GET("/users/:userId/reservations", s.handler.ListByUser)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("active", body.Status)
		s.Equal("wh-east", body.WarehouseID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 when unknown", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrReservationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+uuid.NewString(), nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestCommit / TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCommit() {
	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusCommitted })
	url := "/reservations/" + b.ID.String() + "/commit"

	testCases := []struct {
		name       string
		returnErr  error
		expectCode int
		expectMsg  string
	}{
		{name: "success", expectCode: http.StatusOK},
		{name: "not found", returnErr: errs.Mark(errors.New("x"), errs.ErrReservationNotFound), expectCode: http.StatusNotFound, expectMsg: "Reservation not found"},
		{name: "not active", returnErr: errs.Mark(errors.New("x"), errs.ErrReservationNotActive), expectCode: http.StatusConflict, expectMsg: "no longer active"},
		{name: "store failure", returnErr: errs.Mark(errors.New("x"), errs.ErrDatabaseOperationFailed), expectCode: http.StatusServiceUnavailable, expectMsg: "try again"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var res *reservation.Reservation
			if tc.returnErr == nil {
				res = b.BuildDomain()
			}
			s.mockCommands.EXPECT().CommitReservation(gomock.Any(), b.ID).Return(res, tc.returnErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, nil)

			if tc.returnErr != nil {
				resp := httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
				retryable := tc.expectCode == http.StatusServiceUnavailable
				s.Equal(retryable, resp.Error.Retryable)
				httptest.AssertRetryAfter(s.T(), rec, retryable)
				return
			}
			var body resdto.ReservationResponse
			httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, &body)
			s.Equal("committed", body.Status)
		})
	}
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = reservation.StatusCancelled })

	s.Run("success: cancels through the cancel command", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), b.ID).Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+b.ID.String()+"/cancel", nil, nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/123/cancel", nil, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestListByUser
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListByUser() {
	first := builder.NewReservationBuilder().BuildView()
	second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.CreatedAt = first.CreatedAt.Add(-time.Minute)
	}).BuildView()

	s.Run("success: page with next cursor", func() {
		next := &queries.Cursor{After: queries.EncodeAfterCursor(second.CreatedAt, second.ID)}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "user-1", nil, 2).
			Return([]*queries.ReservationView{first, second}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/user-1/reservations?limit=2", nil, nil)

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Reservations, 2)
		s.Equal(next.After, body.NextCursor)
	})

	s.Run("cursor is forwarded", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "user-1", &queries.Cursor{After: "abc"}, 0).
			Return([]*queries.ReservationView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/user-1/reservations?after=abc", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"reservations":[]}`, rec.Body.String())
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errors.New("bad base64"), queries.ErrInvalidCursor)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/user-1/reservations?after=%25%25", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 400 on invalid limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/user-1/reservations?limit=-1", nil, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
