package domain

import (
	"crypto/rand"
	"fmt"
)

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const DefaultRoomCodeLength = 8

// NewRoomCode returns a random uppercase alphanumeric code of length characters.
func NewRoomCode(length int) (string, error) {
	if length <= 0 {
		length = DefaultRoomCodeLength
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range buf {
		buf[i] = roomCodeAlphabet[int(buf[i])%len(roomCodeAlphabet)]
	}
	return string(buf), nil
}
