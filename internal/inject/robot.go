package inject

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"kvmlink/internal/event"
)

// RobotInjector drives the local pointer through robotgo.
type RobotInjector struct{}

// NewRobotInjector creates the robotgo-backed injector.
func NewRobotInjector() *RobotInjector {
	return &RobotInjector{}
}

// MoveTo moves the cursor to absolute screen coordinates.
func (RobotInjector) MoveTo(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// SetButton presses or releases a mouse button.
func (RobotInjector) SetButton(b event.Button, down bool) error {
	name, ok := buttonName(b)
	if !ok {
		return fmt.Errorf("inject: no local button for 0x%02x", uint8(b))
	}
	direction := "up"
	if down {
		direction = "down"
	}
	return robotgo.Toggle(name, direction)
}

// buttonName maps a wire button to robotgo's button naming.
func buttonName(b event.Button) (string, bool) {
	switch b {
	case event.ButtonLeft:
		return "left", true
	case event.ButtonRight:
		return "right", true
	case event.ButtonMiddle:
		return "center", true
	}
	return "", false
}
