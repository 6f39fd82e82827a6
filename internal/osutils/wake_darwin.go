//go:build darwin

package osutils

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>

void wakeDisplay() {
    CGEventRef event = CGEventCreate(NULL);
    CGPoint loc = CGEventGetLocation(event);
    CFRelease(event);

    // Move the pointer one pixel and back; enough to wake the display.
    CGEventRef move1 = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved,
        CGPointMake(loc.x + 1, loc.y + 1), kCGMouseButtonLeft);
    CGEventPost(kCGHIDEventTap, move1);
    CFRelease(move1);

    CGEventRef move2 = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved,
        CGPointMake(loc.x, loc.y), kCGMouseButtonLeft);
    CGEventPost(kCGHIDEventTap, move2);
    CFRelease(move2);
}
*/
import "C"

import "log"

// WakeUp nudges the pointer one pixel and back so a sleeping display turns
// on before remote input starts arriving.
func WakeUp() {
	log.Println("WakeUp: nudging pointer to wake the display")
	C.wakeDisplay()
}
