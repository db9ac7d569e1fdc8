package ports

// CaptureSurface is the UI the recorder drives. It owns all rendering;
// the recorder only tells it what to show.
type CaptureSurface interface {
	HidePrompt()
	SetActionLabel(action, label string)
	SetDisplayText(text string)
	ShowPrompt()
}
