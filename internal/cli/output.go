package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/bytedance/sonic"
	"github.com/fatih/color"
)

func writeJSON(w io.Writer, v interface{}) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// withSpinner runs fn behind a stderr spinner unless JSON output or --no-spinner was requested.
func (a *app) withSpinner(msg string, fn func() error) error {
	if a.jsonOut || a.noSpin {
		return fn()
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + msg
	s.Start()
	defer s.Stop()
	return fn()
}

var (
	label = color.New(color.FgHiBlack).SprintFunc()
	value = color.New(color.FgCyan).SprintFunc()
	title = color.New(color.FgGreen, color.Bold).SprintFunc()
)

func printField(w io.Writer, name string, v interface{}) {
	fmt.Fprintf(w, "  %s %s\n", label(fmt.Sprintf("%-12s", name+":")), value(v))
}
