//go:build js

package game

// A browser tab is closed by the user, not by a key.
func quitRequested() bool { return false }
