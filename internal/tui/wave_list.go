package tui

import (
	"fmt"
	"strings"

	"github.com/Tobel158/waveportal/models"
)

const maxMessageWidth = 60

type waveListModel struct {
	waves []models.Wave
	idx   int
}

// setWaves replaces the list and keeps the cursor in range.
func (m *waveListModel) setWaves(waves []models.Wave) {
	m.waves = waves
	if m.idx >= len(m.waves) {
		m.idx = len(m.waves) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *waveListModel) up() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *waveListModel) down() {
	if m.idx < len(m.waves)-1 {
		m.idx++
	}
}

func (m waveListModel) current() (models.Wave, bool) {
	if len(m.waves) == 0 || m.idx < 0 || m.idx >= len(m.waves) {
		return models.Wave{}, false
	}
	return m.waves[m.idx], true
}

func (m waveListModel) View() string {
	if len(m.waves) == 0 {
		return helpStyle.Render("No waves yet")
	}

	var b strings.Builder
	for i, w := range m.waves {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		fmt.Fprintf(&b, "%s%s  %s\n", cursor,
			addressStyle.Render(w.Address),
			timeStyle.Render(w.Timestamp.Format(waveTimeLayout)))
		fmt.Fprintf(&b, "    %s\n", fitText(w.Message, maxMessageWidth))
	}

	return strings.TrimRight(b.String(), "\n")
}
