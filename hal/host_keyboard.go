//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var hostKeyMap = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeyDelete, KeyDelete},
	{ebiten.KeyHome, KeyHome},
	{ebiten.KeyEnd, KeyEnd},
}

// Control chords the shell line editor understands.
var hostCtrlMap = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.KeyA, 0x01},
	{ebiten.KeyC, 0x03},
	{ebiten.KeyE, 0x05},
	{ebiten.KeyL, 0x0c},
	{ebiten.KeyU, 0x15},
	{ebiten.KeyW, 0x17},
}

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

func (k *hostKeyboard) poll() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl {
		for _, m := range hostCtrlMap {
			if inpututil.IsKeyJustPressed(m.key) {
				k.emit(KeyEvent{Press: true, Rune: m.r})
			}
		}
	} else {
		for _, r := range ebiten.AppendInputChars(nil) {
			k.emit(KeyEvent{Press: true, Rune: r})
		}
	}

	for _, m := range hostKeyMap {
		if inpututil.IsKeyJustPressed(m.key) {
			k.emit(KeyEvent{Code: m.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(m.key) {
			k.emit(KeyEvent{Code: m.code, Press: false})
		}
	}
}
