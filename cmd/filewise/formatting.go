package filewise

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/filewise/pkg/errors"
	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

var summaryStyle = lipgloss.NewStyle().Bold(true).Faint(true)

func init() {
	// Monochrome terminals and pipes get plain output
	if termenv.EnvColorProfile() == termenv.Ascii {
		pterm.DisableColor()
	}
}

// renderResults writes the result list in the requested format.
// Text output is one path per line, with a styled summary when stdout
// is a terminal; the structured formats are machine-readable.
func renderResults(w io.Writer, format string, results []string) error {
	switch format {
	case "", "text":
		return renderText(w, results)
	case "json":
		return renderJSON(w, results)
	case "yaml":
		return renderYAML(w, results)
	case "xml":
		return renderXML(w, results)
	default:
		return errors.Newf(errors.ErrInvalidInput,
			"invalid output format %q, choose one from: text, json, yaml, xml", format)
	}
}

func renderText(w io.Writer, results []string) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	if isTerminal() {
		summary := fmt.Sprintf("%d result(s)", len(results))
		fmt.Fprintln(os.Stderr, summaryStyle.Render(summary))
	}
	return nil
}

func renderJSON(w io.Writer, results []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func renderYAML(w io.Writer, results []string) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func renderXML(w io.Writer, results []string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("results")
	for _, r := range results {
		root.CreateElement("item").SetText(r)
	}
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// RenderError formats an error for the terminal, keeping the error
// code visible for scripting against stderr.
func RenderError(err error) string {
	code := errors.GetErrorCode(err)
	if code != errors.ErrUnknown {
		return fmt.Sprintf("%s [%s] %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			err.Error())
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, err.Error())
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
