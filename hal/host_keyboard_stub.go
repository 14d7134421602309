//go:build !tinygo && !cgo

package hal

// Without the window backend there is no keyboard; input comes from Serial.
type hostKeyboard struct{}

func newHostKeyboard() *hostKeyboard { return &hostKeyboard{} }

func (k *hostKeyboard) Events() <-chan KeyEvent { return nil }

func (k *hostKeyboard) poll() {}
