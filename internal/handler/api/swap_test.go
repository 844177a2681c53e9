//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"slotswapper/internal/handler/api"
	"slotswapper/internal/usecase/commands"
	"slotswapper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubSwapCommands struct {
	proposeView *queries.SwapRequestView
	proposeErr  error
	respondView *queries.SwapRequestView
	respondErr  error
}

func (s *stubSwapCommands) Propose(_ context.Context, _, _, _ uuid.UUID) (*queries.SwapRequestView, error) {
	return s.proposeView, s.proposeErr
}

func (s *stubSwapCommands) Respond(_ context.Context, _, _ uuid.UUID, _ bool) (*queries.SwapRequestView, error) {
	return s.respondView, s.respondErr
}

type stubSwapQueries struct {
	incoming []*queries.SwapRequestView
	outgoing []*queries.SwapRequestView
}

func (s *stubSwapQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.SwapRequestView, error) {
	return nil, queries.ErrSwapRequestNotFound
}

func (s *stubSwapQueries) ListIncoming(_ context.Context, _ uuid.UUID) ([]*queries.SwapRequestView, error) {
	return s.incoming, nil
}

func (s *stubSwapQueries) ListOutgoing(_ context.Context, _ uuid.UUID) ([]*queries.SwapRequestView, error) {
	return s.outgoing, nil
}

type SwapHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubSwapCommands
	queries  *stubSwapQueries
}

func (s *SwapHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &stubSwapCommands{}
	s.queries = &stubSwapQueries{}
	handler := api.NewSwapHandler(s.commands, s.queries)

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.POST("/swap-request", authMiddleware, handler.Propose)
	s.router.GET("/swap-requests/incoming", authMiddleware, handler.ListIncoming)
	s.router.GET("/swap-requests/outgoing", authMiddleware, handler.ListOutgoing)
	s.router.POST("/swap-response/:requestId", authMiddleware, handler.Respond)
}

func TestSwapHandlerSuite(t *testing.T) {
	suite.Run(t, new(SwapHandlerTestSuite))
}

func (s *SwapHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func proposeBody() map[string]any {
	return map[string]any{
		"mySlotId":    uuid.New().String(),
		"theirSlotId": uuid.New().String(),
	}
}

func (s *SwapHandlerTestSuite) TestPropose() {
	s.Run("returns 201 with the created request", func() {
		s.commands.proposeView = &queries.SwapRequestView{ID: uuid.New(), Status: "PENDING"}
		s.commands.proposeErr = nil

		rec := s.perform(http.MethodPost, "/swap-request", proposeBody())
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "PENDING")
	})

	s.Run("missing fields return 400", func() {
		rec := s.perform(http.MethodPost, "/swap-request", map[string]any{"mySlotId": uuid.New().String()})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"unknown slot", commands.ErrSlotNotFound, http.StatusNotFound},
		{"slot not swappable", commands.ErrSlotNotSwappable, http.StatusConflict},
		{"self swap", commands.ErrSelfSwap, http.StatusUnprocessableEntity},
		{"concurrent conflict", commands.ErrSwapConflict, http.StatusConflict},
	}
	for _, c := range cases {
		s.Run(c.name, func() {
			s.commands.proposeView = nil
			s.commands.proposeErr = c.err

			rec := s.perform(http.MethodPost, "/swap-request", proposeBody())
			s.Equal(c.expectCode, rec.Code)
		})
	}
}

func (s *SwapHandlerTestSuite) TestRespond() {
	url := "/swap-response/" + uuid.New().String()

	s.Run("returns 200 with the resolved request", func() {
		s.commands.respondView = &queries.SwapRequestView{ID: uuid.New(), Status: "ACCEPTED"}
		s.commands.respondErr = nil

		rec := s.perform(http.MethodPost, url, map[string]any{"accepted": true})
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "ACCEPTED")
	})

	s.Run("explicit false still passes validation", func() {
		s.commands.respondView = &queries.SwapRequestView{ID: uuid.New(), Status: "REJECTED"}
		s.commands.respondErr = nil

		rec := s.perform(http.MethodPost, url, map[string]any{"accepted": false})
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "REJECTED")
	})

	s.Run("missing accepted returns 400", func() {
		rec := s.perform(http.MethodPost, url, map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed request id returns 400", func() {
		rec := s.perform(http.MethodPost, "/swap-response/not-a-uuid", map[string]any{"accepted": true})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"unknown request", commands.ErrRequestNotFound, http.StatusNotFound},
		{"responder is not the target owner", commands.ErrNotRequestOwner, http.StatusForbidden},
		{"already resolved", commands.ErrAlreadyResolved, http.StatusConflict},
		{"concurrent conflict", commands.ErrSwapConflict, http.StatusConflict},
	}
	for _, c := range cases {
		s.Run(c.name, func() {
			s.commands.respondView = nil
			s.commands.respondErr = c.err

			rec := s.perform(http.MethodPost, url, map[string]any{"accepted": true})
			s.Equal(c.expectCode, rec.Code)
		})
	}
}

func (s *SwapHandlerTestSuite) TestListings() {
	s.Run("incoming returns the pending requests", func() {
		s.queries.incoming = []*queries.SwapRequestView{
			{ID: uuid.New(), Status: "PENDING"},
			{ID: uuid.New(), Status: "PENDING"},
		}

		rec := s.perform(http.MethodGet, "/swap-requests/incoming", nil)
		s.Equal(http.StatusOK, rec.Code)

		var body []map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Len(body, 2)
	})

	s.Run("outgoing returns an empty array when nothing is pending", func() {
		s.queries.outgoing = []*queries.SwapRequestView{}

		rec := s.perform(http.MethodGet, "/swap-requests/outgoing", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}
