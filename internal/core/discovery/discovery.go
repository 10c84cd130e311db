// Package discovery reconstructs the thread→issue link from notification
// messages the bot previously posted into a thread. There is no durable
// link table; the link is re-derived from these artifacts (or the cache
// layered on top of them) every cycle.
package discovery

import (
	"strconv"
	"strings"
)

// Notification markers. The bot both emits these and later recognizes them
// when scanning message history, so they must stay byte-for-byte stable.
const (
	MsgIssueCreated  = "GitHub Issue Created"
	MsgIssueUpdated  = "GitHub Issue Updated"
	MsgIssueClosed   = "🔒 Issue closed or merged on GitHub"
	MsgIssueReopened = "🔓 Issue reopened on GitHub"
)

// MessageFetchLimit bounds the per-thread history scan. A notification
// posted earlier than this window is undiscoverable by scanning.
const MessageFetchLimit = 50

const issueURLPrefix = "https://github.com/"

// IsNotificationTitle reports whether an embed title marks an issue
// creation or update notification.
func IsNotificationTitle(title string) bool {
	return title == MsgIssueCreated || title == MsgIssueUpdated
}

// HasManagedPrefix reports whether a thread name starts with one of the
// configured prefixes that mark a thread as managed by the bridge.
func HasManagedPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// FindIssueURL extracts the first tracker URL from a notification body.
// The URL runs to the first whitespace character or the end of the text.
func FindIssueURL(body string) (string, bool) {
	start := strings.Index(body, issueURLPrefix)
	if start < 0 {
		return "", false
	}
	rest := body[start:]
	if end := strings.IndexFunc(rest, isSpace); end >= 0 {
		rest = rest[:end]
	}
	return rest, true
}

// IssueNumberFromURL parses the trailing path segment of an issue URL as
// the issue number, e.g. ".../issues/42" yields 42.
func IssueNumberFromURL(url string) (int64, bool) {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0, false
	}
	number, err := strconv.ParseInt(trimmed[idx+1:], 10, 64)
	if err != nil || number <= 0 {
		return 0, false
	}
	return number, true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
