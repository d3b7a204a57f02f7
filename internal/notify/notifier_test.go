package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-service/infra/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRoomPublisher struct{ mock.Mock }

func (m *mockRoomPublisher) PublishMessage(ctx context.Context, roomCode string, msgType string, content any) error {
	return m.Called(ctx, roomCode, msgType, content).Error(0)
}

type mockEventPublisher struct{ mock.Mock }

func (m *mockEventPublisher) PublishMessage(ctx context.Context, msg *messaging.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func TestNotifierFansOut(t *testing.T) {
	rooms := &mockRoomPublisher{}
	events := &mockEventPublisher{}
	data := map[string]any{"user_id": "u-1"}

	rooms.On("PublishMessage", mock.Anything, "ABCD1234", "player_joined", data).Return(nil)
	events.On("PublishMessage", mock.Anything, mock.MatchedBy(func(msg *messaging.Message) bool {
		return msg.Type == "player_joined" && msg.Key == "ABCD1234" &&
			msg.String("room_code") == "ABCD1234" && msg.String("user_id") == "u-1"
	})).Return(nil)

	New(rooms, events, time.Second).Notify(context.Background(), "ABCD1234", "player_joined", data)

	rooms.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestNotifierSurvivesCancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rooms := &mockRoomPublisher{}
	rooms.On("PublishMessage", mock.Anything, "ABCD1234", "room_closed", mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(0).(context.Context).Err())
		}).
		Return(errors.New("redis down"))

	assert.NotPanics(t, func() {
		New(rooms, nil, 0).Notify(ctx, "ABCD1234", "room_closed", nil)
	})
	rooms.AssertExpectations(t)
}

func TestNotifierWithoutPublishers(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil, nil, time.Second).Notify(context.Background(), "ABCD1234", "next_question", nil)
	})
}
