package common

import (
	"strings"
	"time"
)

// Animate calls frame for each of n frames, waiting delay after each one.
// It stops at the first error.
func Animate(n int, delay time.Duration, frame func(i int) error) error {
	for i := 0; i < n; i++ {
		if err := frame(i); err != nil {
			return err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return nil
}

// CustomID joins a feature prefix, an action and a session id
func CustomID(prefix, action, sessionID string) string {
	return prefix + "_" + action + "_" + sessionID
}

// ParseCustomID splits an ID built by CustomID. ok is false when the prefix does not match.
func ParseCustomID(prefix, customID string) (action, sessionID string, ok bool) {
	rest, found := strings.CutPrefix(customID, prefix+"_")
	if !found {
		return "", "", false
	}
	action, sessionID, found = strings.Cut(rest, "_")
	if !found || action == "" || sessionID == "" {
		return "", "", false
	}
	return action, sessionID, true
}
