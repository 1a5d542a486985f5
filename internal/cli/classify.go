// Package cli — classify.go implements the "plugkit classify" command.
//
// The classify command reads an error description as JSON or JSONC (from a
// file argument or stdin), rebuilds the described error chain, resolves the
// exit code the process would terminate with, and prints the normalized
// report as JSON or YAML.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/plugkit/internal/exiterr"
)

// errorDoc is the wire shape of an error description accepted by classify.
// It mirrors the fields of exiterr.Error plus the two exit directives;
// cause nests recursively.
type errorDoc struct {
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`

	// Code may be a JSON number or string, matching how loosely error
	// objects carry codes in the wild. It is normalized to a string.
	Code any `json:"code,omitempty"`

	// ExitCode and FrameworkExit are pointers so that an explicit 0 is
	// distinguishable from the field being absent.
	ExitCode      *int `json:"exitCode,omitempty"`
	FrameworkExit *int `json:"frameworkExit,omitempty"`

	Stack       string    `json:"stack,omitempty"`
	Actions     []string  `json:"actions,omitempty"`
	Context     string    `json:"context,omitempty"`
	CommandName string    `json:"commandName,omitempty"`
	Data        any       `json:"data,omitempty"`
	Result      any       `json:"result,omitempty"`
	Cause       *errorDoc `json:"cause,omitempty"`
}

// classifyFlags holds the flag values for the classify command.
type classifyFlags struct {
	// format selects the report encoding: "json" (default) or "yaml".
	format string

	// command is the fallback command name for the report's context and
	// commandName fields.
	command string

	// fallback is the exit code used when the error carries none.
	fallback int
}

// NewClassifyCommand creates the "classify" cobra command.
func NewClassifyCommand() *cobra.Command {
	flags := &classifyFlags{}

	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Resolve the exit code and report for an error description",
		Long: `Classify reads an error description (JSON, comments allowed) from a
file or stdin, resolves the process exit code through the standard
precedence ladder (gack > type error > framework exit > exit code >
symbolic code > fallback), and prints the normalized error report.

Examples:
  plugkit classify error.json
  cat error.json | plugkit classify --format yaml
  plugkit classify error.json --command deploy --fallback 2`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return runClassify(cmd.OutOrStdout(), cmd.InOrStdin(), source, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "json", "Report format: json, yaml")
	cmd.Flags().StringVar(&flags.command, "command", "", "Command name recorded in the report")
	cmd.Flags().IntVar(&flags.fallback, "fallback", exiterr.ExitDefault, "Exit code when the error carries none")

	return cmd
}

// runClassify is the main logic function for the classify command.
func runClassify(out io.Writer, in io.Reader, source string, flags *classifyFlags) error {
	if flags.format != "json" && flags.format != "yaml" {
		return fmt.Errorf("invalid format %q (valid: json, yaml)", flags.format)
	}

	raw, err := readSource(in, source)
	if err != nil {
		return err
	}

	var doc errorDoc
	if err := json.Unmarshal(jsonc.ToJSON(raw), &doc); err != nil {
		return fmt.Errorf("parsing error description: %w", err)
	}

	built := buildError(&doc)
	code := exiterr.Resolve(built, flags.fallback)
	slog.Debug("resolved exit code", "code", code, "gack", exiterr.IsGack(built), "typeError", exiterr.IsTypeError(built))

	report := exiterr.NewReport(code, built, flags.command)
	return writeReport(out, report, flags.format)
}

// readSource reads the error description from the named file, or from
// stdin when no file argument was given.
func readSource(in io.Reader, source string) ([]byte, error) {
	if source == "" {
		return io.ReadAll(in)
	}
	return os.ReadFile(source)
}

// buildError reconstructs the error chain described by doc, innermost cause
// first. Exit directives wrap the structured error so that resolution sees
// them in precedence order: the framework directive outermost.
func buildError(doc *errorDoc) error {
	if doc == nil {
		return nil
	}

	e := &exiterr.Error{
		Msg:         doc.Message,
		Name:        doc.Name,
		Code:        normalizeCode(doc.Code),
		Actions:     doc.Actions,
		Context:     doc.Context,
		CommandName: doc.CommandName,
		Data:        doc.Data,
		Result:      doc.Result,
		Stack:       doc.Stack,
		Err:         buildError(doc.Cause),
	}

	var built error = e
	if doc.ExitCode != nil {
		built = exiterr.Exit(built, *doc.ExitCode)
	}
	if doc.FrameworkExit != nil {
		built = exiterr.FrameworkExit(*doc.FrameworkExit, built)
	}
	return built
}

// normalizeCode flattens a JSON number-or-string code into a string.
// Integral floats render without the decimal point so "code": 4 resolves
// to exit code 4.
func normalizeCode(code any) string {
	switch c := code.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		if c == float64(int64(c)) {
			return strconv.FormatInt(int64(c), 10)
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	case json.Number:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

// writeReport encodes the report in the requested format.
func writeReport(out io.Writer, report exiterr.Report, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
