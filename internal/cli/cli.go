// Package cli holds the flags and styles shared by the command-line tools.
package cli

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang/glog"
)

// Common flags embedded in every command.
type Common struct {
	Verbosity int    `short:"v" help:"glog verbosity level." default:"0" env:"DCFR_VERBOSITY"`
	PprofAddr string `help:"Serve net/http/pprof on this address, e.g. localhost:4123." env:"DCFR_PPROF_ADDR"`
}

// Setup routes glog to stderr at the requested verbosity and starts the
// profiling server if one was requested.
func (c *Common) Setup() {
	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(c.Verbosity))
	// glog reads its settings from the standard flag set.
	flag.CommandLine.Parse(nil)

	if c.PprofAddr != "" {
		go func() {
			glog.Infof("Serving pprof on %s", c.PprofAddr)
			if err := http.ListenAndServe(c.PprofAddr, nil); err != nil {
				glog.Errorf("pprof server: %v", err)
			}
		}()
	}
}

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	HighStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	MixedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	LowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Field prints an indented "- label: value" line.
func Field(label, format string, args ...interface{}) {
	fmt.Printf("- %s %s\n", LabelStyle.Render(label+":"), fmt.Sprintf(format, args...))
}

// FrequencyStyle picks a color for an action frequency.
func FrequencyStyle(p float64) lipgloss.Style {
	switch {
	case p >= 0.9995:
		return HighStyle
	case p < 0.0005:
		return LowStyle
	default:
		return MixedStyle
	}
}
