package shell

import "testing"

func TestParseEscape_Arrows(t *testing.T) {
	tcs := []struct {
		in   string
		n    int
		act  escAction
		ok   bool
		name string
	}{
		{name: "up", in: "\x1b[A", n: 3, act: escUp, ok: true},
		{name: "down", in: "\x1b[B", n: 3, act: escDown, ok: true},
		{name: "right", in: "\x1b[C", n: 3, act: escRight, ok: true},
		{name: "left", in: "\x1b[D", n: 3, act: escLeft, ok: true},
		{name: "home", in: "\x1b[H", n: 3, act: escHome, ok: true},
		{name: "end", in: "\x1b[F", n: 3, act: escEnd, ok: true},
		{name: "delete", in: "\x1b[3~", n: 4, act: escDelete, ok: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			n, act, ok := parseEscape([]byte(tc.in))
			if ok != tc.ok || n != tc.n || act != tc.act {
				t.Fatalf("parseEscape(%q) = n=%d act=%v ok=%v; want n=%d act=%v ok=%v", tc.in, n, act, ok, tc.n, tc.act, tc.ok)
			}
		})
	}
}

func TestParseEscape_Partial(t *testing.T) {
	for _, in := range []string{"\x1b[", "\x1b[3", "\x1b[1"} {
		n, _, ok := parseEscape([]byte(in))
		if ok || n != 0 {
			t.Fatalf("parseEscape(%q) = n=%d ok=%v; want n=0 ok=false", in, n, ok)
		}
	}
}

func TestParseEscape_Unknown(t *testing.T) {
	n, act, ok := parseEscape([]byte("\x1b[2J rest"))
	if !ok || n != 4 || act != escNone {
		t.Fatalf("parseEscape(CSI 2J) = n=%d act=%v ok=%v; want n=4 act=escNone ok=true", n, act, ok)
	}
}
