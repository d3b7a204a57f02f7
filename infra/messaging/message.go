package messaging

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	MessageUserCreated = "user_created"
)

// Message is the envelope carried on every topic. It travels as a protobuf Struct.
type Message struct {
	ID         string
	Type       string
	Key        string
	OccurredAt time.Time
	Data       map[string]any
}

func NewMessage(msgType, key string, data map[string]any) *Message {
	return &Message{
		ID:         uuid.NewString(),
		Type:       msgType,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// String returns the data field name as a string, or "" when absent.
func (m *Message) String(name string) string {
	v, _ := m.Data[name].(string)
	return v
}

func Encode(msg *Message) ([]byte, error) {
	data := msg.Data
	if data == nil {
		data = map[string]any{}
	}
	envelope, err := structpb.NewStruct(map[string]any{
		"id":          msg.ID,
		"type":        msg.Type,
		"key":         msg.Key,
		"occurred_at": msg.OccurredAt.UTC().Format(time.RFC3339Nano),
		"data":        data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build envelope: %w", err)
	}
	return proto.Marshal(envelope)
}

func Decode(payload []byte) (*Message, error) {
	var envelope structpb.Struct
	if err := proto.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal envelope: %w", err)
	}

	fields := envelope.GetFields()
	msg := &Message{
		ID:   fields["id"].GetStringValue(),
		Type: fields["type"].GetStringValue(),
		Key:  fields["key"].GetStringValue(),
	}
	if msg.Type == "" {
		return nil, fmt.Errorf("envelope %q has no type", msg.ID)
	}
	if ts := fields["occurred_at"].GetStringValue(); ts != "" {
		occurredAt, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("invalid occurred_at: %w", err)
		}
		msg.OccurredAt = occurredAt
	}
	if data := fields["data"].GetStructValue(); data != nil {
		msg.Data = data.AsMap()
	} else {
		msg.Data = map[string]any{}
	}
	return msg, nil
}
