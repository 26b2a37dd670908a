package tui

// noticeOverlayModel is a modal notice. It blocks input until dismissed.
type noticeOverlayModel struct {
	message string
}

func (m noticeOverlayModel) View() string {
	content := m.message + "\n\n" + helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(content)
}
