package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("s3cret")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("register alice: %w", ErrDuplicateUsername)
	if !errors.Is(wrapped, ErrDuplicateUsername) {
		t.Fatalf("errors.Is must see through wrapping")
	}
	if errors.Is(wrapped, ErrUserNotFound) {
		t.Fatalf("distinct sentinels must not match")
	}
}
