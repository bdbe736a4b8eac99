package playerbar

import (
	"strings"

	"github.com/llehouerou/decoded/internal/ui/styles"
)

var (
	filledBlock = "━"
	emptyBlock  = "─"
	headBlock   = "●"
)

// RenderProgressBar renders a bar of width cells filled to ratio (0..1).
// Format: ━━━━━●──────
func RenderProgressBar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	st := styles.T().S()

	ratio = max(0, min(ratio, 1))
	filled := min(int(float64(width)*ratio), width-1)
	empty := width - filled - 1

	return st.Filled.Render(strings.Repeat(filledBlock, filled)+headBlock) +
		st.Empty.Render(strings.Repeat(emptyBlock, empty))
}
