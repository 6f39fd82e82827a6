package capture

import (
	hook "github.com/robotn/gohook"
)

// HookSource captures global mouse input through the OS-level hook that
// gohook installs. The hook is process-global: one Subscribe per process.
type HookSource struct{}

// NewHookSource creates the global-hook capture source.
func NewHookSource() *HookSource {
	return &HookSource{}
}

// Subscribe installs the global hook and forwards every observed event to
// fn until the hook shuts down.
func (s *HookSource) Subscribe(fn func(RawEvent)) error {
	ch := hook.Start()
	defer hook.End()

	for ev := range ch {
		fn(fromHookEvent(ev))
	}
	return nil
}

// fromHookEvent flattens a gohook event into a RawEvent. Drags count as
// moves (the relay carries pointer position, not gestures), and a hold
// counts as a press because some platforms report the initial press that
// way.
func fromHookEvent(ev hook.Event) RawEvent {
	raw := RawEvent{
		X:      int32(ev.X),
		Y:      int32(ev.Y),
		Button: uint8(ev.Button),
	}
	switch ev.Kind {
	case hook.MouseMove, hook.MouseDrag:
		raw.Kind = KindMouseMove
	case hook.MouseDown, hook.MouseHold:
		raw.Kind = KindMouseDown
	case hook.MouseUp:
		raw.Kind = KindMouseUp
	default:
		raw.Kind = KindOther
	}
	return raw
}
