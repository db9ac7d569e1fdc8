//go:build linux && !nohotkey

package globalhotkey

import (
	"golang.design/x/hotkey"

	"github.com/renato0307/clipkeys/internal/domain"
)

// X11 maps Alt to Mod1 and Super to Mod4
var modMap = map[domain.Modifier]hotkey.Modifier{
	domain.ModCtrl:  hotkey.ModCtrl,
	domain.ModShift: hotkey.ModShift,
	domain.ModAlt:   hotkey.Mod1,
	domain.ModMeta:  hotkey.Mod4,
}

// RunOnMain runs fn directly; X11 has no main thread requirement
func RunOnMain(fn func()) {
	fn()
}
