package threadid_test

import (
	"testing"

	"github.com/example/bridgebot/internal/core/threadid"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		title  string
		wantID uint64
		wantOK bool
	}{
		{"Bug with login [1234567890]", 1234567890, true},
		{"Feature request [9876543210]", 9876543210, true},
		{"[9876543210] trailing", 9876543210, true},
		{"double [111] and [222]", 111, true},
		{"No thread ID here", 0, false},
		{"[not-a-number]", 0, false},
		{"empty brackets []", 0, false},
		{"[18446744073709551615] max u64", 18446744073709551615, true},
		{"[18446744073709551616] overflow", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			id, ok := threadid.Decode(tc.title)
			if ok != tc.wantOK {
				t.Fatalf("Decode(%q) ok = %v, want %v", tc.title, ok, tc.wantOK)
			}
			if id != tc.wantID {
				t.Errorf("Decode(%q) = %d, want %d", tc.title, id, tc.wantID)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	if got := threadid.Encode(1234567890); got != "[1234567890]" {
		t.Errorf("Encode(1234567890) = %q, want %q", got, "[1234567890]")
	}
}

func TestRoundTrip(t *testing.T) {
	ids := []uint64{0, 1, 42, 1234567890, 18446744073709551615}
	for _, id := range ids {
		title := "Some thread title " + threadid.Encode(id)
		got, ok := threadid.Decode(title)
		if !ok {
			t.Fatalf("Decode(Encode(%d)) did not match", id)
		}
		if got != id {
			t.Errorf("round trip %d = %d", id, got)
		}
	}
}
