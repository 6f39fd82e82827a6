//go:build !darwin && !windows

// Package osutils holds the small platform helpers the relay needs.
package osutils

// WakeUp is a no-op where no platform support exists.
func WakeUp() {}
