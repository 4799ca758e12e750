package utils

import "testing"

func TestShareCodeRoundTrip(t *testing.T) {
	ids := []int64{1, 42, 2015344440675143680}
	for _, id := range ids {
		code := ShareCode(id)
		if code == "" {
			t.Fatalf("empty code for %d", id)
		}
		got, err := DecodeShareCode(code)
		if err != nil {
			t.Fatalf("decode %q: %v", code, err)
		}
		if got != id {
			t.Fatalf("round trip mismatch: %d -> %q -> %d", id, code, got)
		}
	}
}

func TestDecodeShareCode_Invalid(t *testing.T) {
	if _, err := DecodeShareCode("!!not-a-code!!"); err == nil {
		t.Fatal("expected error for garbage code")
	}
}
