//go:build windows && !nohotkey

package globalhotkey

import (
	"golang.design/x/hotkey"

	"github.com/renato0307/clipkeys/internal/domain"
)

var modMap = map[domain.Modifier]hotkey.Modifier{
	domain.ModCtrl:  hotkey.ModCtrl,
	domain.ModShift: hotkey.ModShift,
	domain.ModAlt:   hotkey.ModAlt,
	domain.ModMeta:  hotkey.ModWin,
}

// RunOnMain runs fn directly
func RunOnMain(fn func()) {
	fn()
}
