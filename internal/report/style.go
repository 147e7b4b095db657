package report

import "github.com/fatih/color"

var (
	bold = color.New(color.Bold).SprintFunc()
	dim  = color.New(color.Faint).SprintFunc()
)

// processColors cycles bold colors so neighbouring processes are told apart.
var processColors = []func(a ...interface{}) string{
	color.New(color.Bold, color.FgMagenta).SprintFunc(),
	color.New(color.Bold, color.FgCyan).SprintFunc(),
	color.New(color.Bold, color.FgYellow).SprintFunc(),
	color.New(color.Bold, color.FgGreen).SprintFunc(),
	color.New(color.Bold, color.FgHiBlue).SprintFunc(),
	color.New(color.Bold, color.FgHiRed).SprintFunc(),
}

func processColor(pid int) func(a ...interface{}) string {
	if pid < 0 {
		pid = -pid
	}
	return processColors[pid%len(processColors)]
}

// SetColor forces colored output on or off; by default color follows the terminal.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}
