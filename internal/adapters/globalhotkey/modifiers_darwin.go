//go:build darwin && !nohotkey

package globalhotkey

import (
	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"github.com/renato0307/clipkeys/internal/domain"
)

var modMap = map[domain.Modifier]hotkey.Modifier{
	domain.ModCtrl:  hotkey.ModCtrl,
	domain.ModShift: hotkey.ModShift,
	domain.ModAlt:   hotkey.ModOption,
	domain.ModMeta:  hotkey.ModCmd,
}

// RunOnMain runs fn while the Cocoa event loop owns the main thread.
// Must be called from the main goroutine.
func RunOnMain(fn func()) {
	mainthread.Init(fn)
}
