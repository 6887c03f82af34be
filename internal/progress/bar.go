package progress

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"pkg.jsn.cam/walksim/pkg/walk"
)

// Bar returns a progress sink that renders a terminal bar on out. The bar is
// created on the first event, so an empty batch draws nothing.
func Bar(out io.Writer) walk.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(current, total int, label, unit string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(out),
				progressbar.OptionSetDescription(label),
				progressbar.OptionSetItsString(unit),
				progressbar.OptionShowCount(),
				progressbar.OptionShowIts(),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(out)
				}),
			)
		}
		_ = bar.Set(current)
	}
}
