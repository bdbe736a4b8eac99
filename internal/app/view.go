// internal/app/view.go
package app

import (
	"strings"

	"github.com/llehouerou/decoded/internal/ui/headerbar"
	"github.com/llehouerou/decoded/internal/ui/render"
	"github.com/llehouerou/decoded/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	st := styles.T().S()
	state := m.Session.State()
	snap := m.Theme.Snapshot()

	parts := []string{headerbar.Render(snap.Theme, snap.LogicTransitioning, m.Width)}

	if m.ShowHelp {
		parts = append(parts, m.Help.View())
	} else {
		parts = append(parts, m.Shelf.View(state))
	}

	if m.ErrorMsg != "" {
		parts = append(parts, st.Error.Render(render.Fit(m.ErrorMsg, m.Width)))
	}

	if bar := m.Bar.View(state, m.Ambient.Muted(), m.Width); bar != "" {
		parts = append(parts, bar)
	}

	view := strings.Join(parts, "\n")
	return m.Overlay.View(view, m.Width, m.Height)
}
