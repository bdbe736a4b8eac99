// Package layout provides pure functions for UI dimension calculations.
package layout

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight    int
	PlayerBarHeight int  // 0 while nothing is selected
	StatusVisible   bool // error line above the player bar
}

// ContentHeight calculates the height left for the shelf (or the help
// panel that replaces it): the terminal height minus header, status line
// and player bar. It never goes below zero.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.PlayerBarHeight
	height -= StatusHeight(opts.StatusVisible)
	return max(height, 0)
}

// StatusHeight returns the rows taken by the status line.
func StatusHeight(visible bool) int {
	if visible {
		return 1
	}
	return 0
}
