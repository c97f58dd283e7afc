package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger carries the CLI's own diagnostics (watch failures, config
// problems) on stderr, keeping stdout clean for reporter output.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})
