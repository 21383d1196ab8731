package utils

import "github.com/google/uuid"

// UUIDGenerator produces provisional identifiers for conversations, messages
// and file records created optimistically on the client. UUIDv7 values are
// time-ordered, so provisional rows sort in creation order even before the
// server confirms them.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
