package internal

import (
	"regexp"
	"strings"
	"unicode"
)

const watchBaseURL = "https://www.youtube.com/watch?v="

var (
	// videoIDPattern matches a v= query parameter anywhere in the input.
	videoIDPattern = regexp.MustCompile(`v=([A-Za-z0-9_-]{11})`)
	// bareIDPattern matches a string that is nothing but a video ID.
	bareIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// NormalizeInput turns a user-supplied YouTube reference into a canonical
// watch URL.
//
// It tolerates badly escaped copy-paste: surrounding whitespace, control
// characters and stray backslashes are removed before the video ID is
// extracted. Raw 11-character IDs and partial watch?v= paths are completed to
// full URLs. Unrecognized input passes through unchanged and the download
// stage surfaces the failure.
func NormalizeInput(arg string) string {
	s := strings.TrimSpace(arg)

	// Drop control and other non-printable characters (\v, \r and friends)
	s = strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)

	// Remove leftover backslashes from escaped input
	s = strings.ReplaceAll(s, `\`, "")

	// Extract video ID if present anywhere
	if m := videoIDPattern.FindStringSubmatch(s); m != nil {
		return watchBaseURL + m[1]
	}

	// Raw video ID
	if bareIDPattern.MatchString(s) {
		return watchBaseURL + s
	}

	// Partial watch path
	if strings.HasPrefix(s, "watch?v=") {
		return "https://www.youtube.com/" + s
	}

	return s
}
