// Package output renders staging plans, results, and status reports for
// the terminal.
package output

import (
	"fmt"
	"io"

	"github.com/evanmartell/shortstage/pkg/types"
)

// Renderer writes human-readable command output.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// NewRenderer creates a renderer for the given writer. Styling is dropped
// when noColor is set or the environment cannot display it.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	styles := DefaultStyles()
	if noColor || !colorCapable() {
		styles = PlainStyles()
	}
	return &Renderer{w: w, styles: styles}
}

// RenderPlan prints one line per planned operation, used for dry runs.
func (r *Renderer) RenderPlan(results []types.OperationResult) {
	for _, res := range results {
		fmt.Fprintf(r.w, "  %s\n", r.styles.Dim.Render(res.Message))
	}
	fmt.Fprintf(r.w, "%s\n", r.styles.Dim.Render("Dry run, no changes were made"))
}

// RenderStageSuccess prints the two-line completion message.
func (r *Renderer) RenderStageSuccess(result *types.StageResult) {
	fmt.Fprintf(r.w, "%s %s\n",
		r.styles.Success.Render("Project staged at"),
		r.styles.Path.Render(result.Root))
	fmt.Fprintf(r.w, "Run: %s\n", r.styles.Path.Render(result.NextCommand))
}

// RenderStatus prints one line per manifest destination.
func (r *Renderer) RenderStatus(result *types.StatusResult) {
	fmt.Fprintf(r.w, "Status of %s\n", r.styles.Path.Render(result.Root))
	for _, e := range result.Entries {
		var state string
		switch e.State {
		case types.StateStaged:
			state = r.styles.Success.Render(string(e.State))
		case types.StateModified:
			state = r.styles.Modified.Render(string(e.State))
		default:
			state = r.styles.Error.Render(string(e.State))
		}
		fmt.Fprintf(r.w, "  %-32s %s\n", e.Dest, state)
	}
}
