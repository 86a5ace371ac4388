// Package cmd implements the pchart command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/perfchart"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// Commands lists every pchart subcommand with its group.
var Commands = []struct {
	Group   string
	Command subcommands.Command
}{
	{"calendar", &tradingDayCmd{}},
	{"calendar", &holidaysCmd{}},
	{"chart", &chartCmd{}},
	{"chart", &summaryCmd{}},
	{"chart", &labelsCmd{}},
	{"", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range Commands {
		c.Register(e.Command, e.Group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose turns on debug logs.
var Verbose = flag.Bool("v", false, "verbose output")
var currency = flag.String("currency", "", "Currency of the portfolio value (defaults to $"+EnvCurrency+")")

// Setup applies global flags once they are parsed.
func Setup() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *Verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// portfolioCurrency returns the currency flag, or its environment default.
func portfolioCurrency() string {
	if *currency != "" {
		return *currency
	}
	return os.Getenv(EnvCurrency)
}

// decodeFile opens name and decodes it in the format of its extension.
func decodeFile[T any](name, path string, decode func(io.Reader, perfchart.Format, string) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(name)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := decode(f, perfchart.FormatOf(name), path)
	if err != nil {
		return zero, fmt.Errorf("decoding %q: %w", name, err)
	}
	log.WithField("file", name).Debug("decoded")
	return v, nil
}

// printMarkdown renders md for the terminal, falling back to raw markdown.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Debugf("cannot create markdown renderer: %v", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Debugf("cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}
