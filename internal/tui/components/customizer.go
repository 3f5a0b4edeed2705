package components

import (
	"fmt"
	"strings"

	"showcase/internal/demo"
	"showcase/internal/tui/styles"
)

// RenderControls draws a form with the cursor on row cursor.
func RenderControls(title string, cs []demo.Control, cursor int, s styles.Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(title) + "\n")
	for i, c := range cs {
		line := fmt.Sprintf("%-16s %s", c.Label, c.Value)
		switch {
		case !c.Enabled:
			line = s.Subtitle.Render("  " + line)
		case i == cursor:
			line = s.Selected.Render("> " + line)
		default:
			line = s.Unselected.Render("  " + line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
