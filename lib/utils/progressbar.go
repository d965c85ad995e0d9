package utils

import (
	"time"

	"github.com/schollz/progressbar/v3"
)

// NewFetchSpinner shows progress for paginated fetches, where the total
// number of pages is not known upfront.
func NewFetchSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionThrottle(300*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}
