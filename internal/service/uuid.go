package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidUUID indicates the string is not a valid UUID format
	ErrInvalidUUID = errors.New("invalid UUID format")
	// ErrNotUUIDv7 indicates the UUID is not version 7
	ErrNotUUIDv7 = errors.New("UUID must be version 7")
	// ErrFutureTimestamp indicates the UUIDv7 timestamp is too far in the future
	ErrFutureTimestamp = errors.New("UUID timestamp is too far in the future")
)

// MaxClockSkew is how far ahead of the server a client-generated ID may be.
const MaxClockSkew = time.Minute

// ValidateUUIDv7 checks that id is a UUIDv7 whose embedded timestamp is not more
// than MaxClockSkew ahead of now. Entries are ordered by creation time, so a
// client ID from the future would sort ahead of everything written after it.
func ValidateUUIDv7(id string, now time.Time) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}

	if parsed.Version() != 7 {
		return fmt.Errorf("%w: got version %d", ErrNotUUIDv7, parsed.Version())
	}

	ts := uuidV7Time(parsed)
	if ts.After(now.Add(MaxClockSkew)) {
		return fmt.Errorf("%w: %v is more than %v ahead",
			ErrFutureTimestamp, ts.Format(time.RFC3339), MaxClockSkew)
	}

	return nil
}

// uuidV7Time extracts the embedded Unix millisecond timestamp.
func uuidV7Time(id uuid.UUID) time.Time {
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec).UTC()
}

// resolveEntryID returns the client's ID when it is an acceptable UUIDv7, or a fresh
// one when the client sent none.
func resolveEntryID(clientID string, now time.Time) (string, error) {
	if clientID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("failed to generate entry id: %w", err)
		}
		return id.String(), nil
	}

	if err := ValidateUUIDv7(clientID, now); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return clientID, nil
}
