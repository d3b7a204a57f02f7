package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quiz-service/domain"
	httpUsecase "quiz-service/internal/api/http/usecase"
	fiberHandler "quiz-service/internal/handler"
	"quiz-service/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCreateRoom struct{ mock.Mock }

func (m *mockCreateRoom) Execute(ctx context.Context, userID uuid.UUID) (*domain.Room, int, error) {
	args := m.Called(ctx, userID)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Int(1), args.Error(2)
}

type mockJoinRoom struct{ mock.Mock }

func (m *mockJoinRoom) Execute(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, int, error) {
	args := m.Called(ctx, code, userID)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Int(1), args.Error(2)
}

type mockSubmitGuess struct{ mock.Mock }

func (m *mockSubmitGuess) Execute(ctx context.Context, roundID, userID uuid.UUID, text string) (*httpUsecase.GuessResult, int, error) {
	args := m.Called(ctx, roundID, userID, text)
	result, _ := args.Get(0).(*httpUsecase.GuessResult)
	return result, args.Int(1), args.Error(2)
}

type mockGetQuestion struct{ mock.Mock }

func (m *mockGetQuestion) Execute(ctx context.Context, questionID, userID uuid.UUID) (*domain.QuestionView, int, error) {
	args := m.Called(ctx, questionID, userID)
	view, _ := args.Get(0).(*domain.QuestionView)
	return view, args.Int(1), args.Error(2)
}

func newTestApp() *fiber.App {
	return server.NewFiberApp(server.Config{AllowOrigins: "*", ReadTimeout: time.Second, WriteTimeout: time.Second})
}

type errorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, userID, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set(fiberHandler.UserIDHeader, userID)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCreateRoomHandler(t *testing.T) {
	userID := uuid.New()
	usecase := &mockCreateRoom{}
	usecase.On("Execute", mock.Anything, userID).
		Return(&domain.Room{ID: uuid.New(), Code: "ABCD1234", Seat1UserID: userID, Status: domain.RoomWaiting}, http.StatusCreated, nil)

	app := newTestApp()
	app.Post("/rooms", fiberHandler.HandleWithFiber[CreateRoomRequest, CreateRoomResponse](NewCreateRoomHandler(usecase)))

	t.Run("created", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/rooms", userID.String(), "")
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body CreateRoomResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "ABCD1234", body.Room.Code)
		assert.Equal(t, domain.RoomWaiting, body.Room.Status)
	})

	t.Run("missing identity", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/rooms", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body errorBody
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, domain.KindUnauthorized, body.Error)
	})

	t.Run("malformed identity", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/rooms", "not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorBody
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, domain.KindValidation, body.Error)
	})

	usecase.AssertNumberOfCalls(t, "Execute", 1)
}

func TestJoinRoomHandler(t *testing.T) {
	userID := uuid.New()
	usecase := &mockJoinRoom{}
	usecase.On("Execute", mock.Anything, "ABCD1234", userID).
		Return(nil, http.StatusConflict, fmt.Errorf("%w: room is full", domain.ErrConflict))

	app := newTestApp()
	app.Post("/rooms/join", fiberHandler.HandleWithFiber[JoinRoomRequest, JoinRoomResponse](NewJoinRoomHandler(usecase)))

	t.Run("code is required", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/rooms/join", userID.String(), `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorBody
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, domain.KindValidation, body.Error)
		assert.Contains(t, body.Message, "Code is required")
	})

	t.Run("domain error keeps its kind", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/rooms/join", userID.String(), `{"code":"ABCD1234"}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var body errorBody
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, domain.KindConflict, body.Error)
		assert.Equal(t, "room is full", body.Message)
	})
}

func TestSubmitGuessHandlerRateLimited(t *testing.T) {
	userID, roundID := uuid.New(), uuid.New()
	usecase := &mockSubmitGuess{}
	usecase.On("Execute", mock.Anything, roundID, userID, "one more time").
		Return(nil, http.StatusTooManyRequests, &domain.RetryAfterError{Wait: 1500 * time.Millisecond})

	app := newTestApp()
	app.Post("/music/guess", fiberHandler.HandleWithFiber[SubmitGuessRequest, httpUsecase.GuessResult](NewSubmitGuessHandler(usecase)))

	resp, raw := doJSON(t, app, http.MethodPost, "/music/guess", userID.String(),
		fmt.Sprintf(`{"round_id":%q,"guess_text":"one more time"}`, roundID))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get(fiber.HeaderRetryAfter))

	var body errorBody
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, domain.KindRateLimited, body.Error)
	assert.Equal(t, 2, body.RetryAfter)
}

func TestGetQuestionHandler(t *testing.T) {
	userID, questionID := uuid.New(), uuid.New()
	usecase := &mockGetQuestion{}
	usecase.On("Execute", mock.Anything, questionID, userID).
		Return(nil, http.StatusInternalServerError, fmt.Errorf("failed to query question: connection reset"))

	app := newTestApp()
	app.Get("/questions/:id", fiberHandler.HandleWithFiber[GetQuestionRequest, GetQuestionResponse](NewGetQuestionHandler(usecase)))

	t.Run("internal errors are masked", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/questions/"+questionID.String(), userID.String(), "")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body errorBody
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, domain.KindInternal, body.Error)
		assert.Equal(t, "internal server error", body.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/questions/42", userID.String(), "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorBody
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, domain.KindValidation, body.Error)
	})
}

func TestUnknownRoute(t *testing.T) {
	resp, raw := doJSON(t, newTestApp(), http.MethodGet, "/nowhere", uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body errorBody
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, domain.KindNotFound, body.Error)
}
