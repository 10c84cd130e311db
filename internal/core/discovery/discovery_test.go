package discovery_test

import (
	"testing"

	"github.com/example/bridgebot/internal/core/discovery"
)

func TestFindIssueURL(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantURL string
		wantOK  bool
	}{
		{
			name:    "url at end",
			body:    "Issue created: https://github.com/acme/widgets/issues/42",
			wantURL: "https://github.com/acme/widgets/issues/42",
			wantOK:  true,
		},
		{
			name:    "url followed by text",
			body:    "See https://github.com/acme/widgets/issues/7 for details",
			wantURL: "https://github.com/acme/widgets/issues/7",
			wantOK:  true,
		},
		{
			name:    "url followed by newline",
			body:    "https://github.com/acme/widgets/issues/9\nmore",
			wantURL: "https://github.com/acme/widgets/issues/9",
			wantOK:  true,
		},
		{
			name:   "no url",
			body:   "nothing to see here",
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			url, ok := discovery.FindIssueURL(tc.body)
			if ok != tc.wantOK {
				t.Fatalf("FindIssueURL ok = %v, want %v", ok, tc.wantOK)
			}
			if url != tc.wantURL {
				t.Errorf("FindIssueURL = %q, want %q", url, tc.wantURL)
			}
		})
	}
}

func TestIssueNumberFromURL(t *testing.T) {
	cases := []struct {
		url    string
		want   int64
		wantOK bool
	}{
		{"https://github.com/acme/widgets/issues/42", 42, true},
		{"https://github.com/acme/widgets/issues/42/", 42, true},
		{"https://github.com/acme/widgets/issues/abc", 0, false},
		{"https://github.com/acme/widgets/issues/0", 0, false},
		{"noslashes", 0, false},
	}

	for _, tc := range cases {
		got, ok := discovery.IssueNumberFromURL(tc.url)
		if ok != tc.wantOK {
			t.Fatalf("IssueNumberFromURL(%q) ok = %v, want %v", tc.url, ok, tc.wantOK)
		}
		if got != tc.want {
			t.Errorf("IssueNumberFromURL(%q) = %d, want %d", tc.url, got, tc.want)
		}
	}
}

func TestHasManagedPrefix(t *testing.T) {
	prefixes := []string{"[BUG]", "[FEATURE]", "[QUESTION]", "[FEEDBACK]"}

	if !discovery.HasManagedPrefix("[BUG] login broken", prefixes) {
		t.Error("expected [BUG] prefix to match")
	}
	if discovery.HasManagedPrefix("general chat", prefixes) {
		t.Error("expected unprefixed name not to match")
	}
	if discovery.HasManagedPrefix("mid [BUG] prefix", prefixes) {
		t.Error("prefix must anchor at the start of the name")
	}
}

func TestIsNotificationTitle(t *testing.T) {
	if !discovery.IsNotificationTitle(discovery.MsgIssueCreated) {
		t.Error("created marker should be recognized")
	}
	if !discovery.IsNotificationTitle(discovery.MsgIssueUpdated) {
		t.Error("updated marker should be recognized")
	}
	if discovery.IsNotificationTitle("Some other embed") {
		t.Error("arbitrary embed title should not be recognized")
	}
}
