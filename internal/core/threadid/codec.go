// Package threadid encodes and decodes the thread identifier embedded in
// issue titles. The bracketed decimal suffix is the only cross-system join
// key between a forum thread and its tracker issue.
package threadid

import (
	"fmt"
	"regexp"
	"strconv"
)

// titlePattern matches the first bracketed run of ASCII digits in a title,
// e.g. "Bug with login [1234567890]".
var titlePattern = regexp.MustCompile(`\[(\d+)\]`)

// Encode renders a thread id as the canonical bracketed title suffix.
func Encode(threadID uint64) string {
	return fmt.Sprintf("[%d]", threadID)
}

// Decode extracts the thread id from an issue title. It returns false when
// the title contains no bracketed digit run, or when the digits overflow
// an unsigned 64-bit integer. Bracketed non-digit content never matches.
func Decode(title string) (uint64, bool) {
	match := titlePattern.FindStringSubmatch(title)
	if match == nil {
		return 0, false
	}
	id, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
