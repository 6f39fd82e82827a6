package event

import "testing"

// TestMapButtonNamed tests that the standard platform codes map to named buttons
func TestMapButtonNamed(t *testing.T) {
	cases := []struct {
		code uint8
		want Button
	}{
		{1, ButtonLeft},
		{2, ButtonRight},
		{3, ButtonMiddle},
	}
	for _, c := range cases {
		b, raw := MapButton(c.code)
		if b != c.want {
			t.Errorf("MapButton(%d) = 0x%02x, want 0x%02x", c.code, uint8(b), uint8(c.want))
		}
		if raw != 0 {
			t.Errorf("MapButton(%d) raw code = %d, want 0", c.code, raw)
		}
	}
}

// TestMapButtonOther tests that unknown codes are preserved, not dropped
func TestMapButtonOther(t *testing.T) {
	b, raw := MapButton(17)
	if b != ButtonOther {
		t.Errorf("Expected ButtonOther, got 0x%02x", uint8(b))
	}
	if raw != 17 {
		t.Errorf("Expected raw code 17, got %d", raw)
	}
}

// TestMouseMove tests the move constructor, including negative coordinates
func TestMouseMove(t *testing.T) {
	ev := MouseMove(-1920, 200)
	if ev.Type != TypeMouseMove {
		t.Errorf("Expected TypeMouseMove, got 0x%02x", uint8(ev.Type))
	}
	if ev.X != -1920 || ev.Y != 200 {
		t.Errorf("Expected (-1920, 200), got (%d, %d)", ev.X, ev.Y)
	}
}

// TestMouseButton tests the button constructor
func TestMouseButton(t *testing.T) {
	ev := MouseButton(ButtonLeft, 0, true)
	if ev.Type != TypeMouseButton {
		t.Errorf("Expected TypeMouseButton, got 0x%02x", uint8(ev.Type))
	}
	if ev.Button != ButtonLeft || !ev.Down {
		t.Errorf("Expected left press, got %+v", ev)
	}
}
