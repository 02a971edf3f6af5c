package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/neume-network/schema"
	schemaerrors "github.com/neume-network/schema/errors"
	"github.com/neume-network/schema/internal/candidate"
)

// errValidationFailed is returned after the diagnostics have been written.
var errValidationFailed = errors.New("validation failed")

type fileResult struct {
	Path   string                    `json:"path"`
	Valid  bool                      `json:"valid"`
	Errors []schemaerrors.Validation `json:"errors,omitempty"`
}

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var (
		formatName string
		output     string
		failFast   bool
	)

	cmd := &cobra.Command{
		Use:   "validate <schema> <file>...",
		Short: "Validate JSON or YAML documents against a definition",
		Long:  "Files ending in .yaml or .yml are read as YAML, everything else as JSON. Use - to read stdin.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			format, err := candidate.ParseFormat(formatName, "")
			if err != nil {
				return err
			}
			mode, err := resolveOutputMode(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			compiled, err := schema.Compile(args[0], ctx.compileOptions(failFast)...)
			if err != nil {
				return err
			}

			results := make([]fileResult, 0, len(args)-1)
			for _, path := range args[1:] {
				value, err := candidate.Load(path, format, cmd.InOrStdin())
				if err != nil {
					results = append(results, fileResult{
						Path:   path,
						Errors: []schemaerrors.Validation{schemaerrors.NewValidation(schemaerrors.ErrDecode, err.Error(), "")},
					})
					continue
				}
				valid, diagnostics := compiled.Check(value)
				logger.Debug("candidate checked", "schema", compiled.Name(), "path", path, "diagnostics", len(diagnostics))
				results = append(results, fileResult{Path: path, Valid: valid, Errors: diagnostics})
			}

			if err := writeResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode, results); err != nil {
				return err
			}
			for _, r := range results {
				if !r.Valid {
					return errValidationFailed
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Candidate format (json, yaml); defaults to the file extension")
	cmd.Flags().StringVarP(&output, "output", "o", "auto", "Output mode (auto, table, plain, json)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first diagnostic")
	return cmd
}

type outputMode string

const (
	outputTable outputMode = "table"
	outputPlain outputMode = "plain"
	outputJSON  outputMode = "json"
)

func resolveOutputMode(name string, stdout io.Writer) (outputMode, error) {
	switch name {
	case "", "auto":
		if isTerminal(stdout) {
			return outputTable, nil
		}
		return outputPlain, nil
	case "table":
		return outputTable, nil
	case "plain":
		return outputPlain, nil
	case "json":
		return outputJSON, nil
	}
	return "", fmt.Errorf("output: unsupported value %q", name)
}

func writeResults(stdout, stderr io.Writer, mode outputMode, results []fileResult) error {
	switch mode {
	case outputJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case outputTable:
		for _, r := range results {
			if r.Valid {
				if _, err := fmt.Fprintf(stdout, "%s validates\n", r.Path); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintln(stdout, renderDiagnostics(r.Errors)); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(stdout, "%s fails to validate\n", r.Path); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, r := range results {
			if r.Valid {
				if _, err := fmt.Fprintf(stdout, "%s validates\n", r.Path); err != nil {
					return err
				}
				continue
			}
			for _, v := range r.Errors {
				if _, err := fmt.Fprintf(stderr, "%s: %s\n", r.Path, v.Error()); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(stderr, "%s fails to validate\n", r.Path); err != nil {
				return err
			}
		}
		return nil
	}
}

func renderDiagnostics(list []schemaerrors.Validation) string {
	rows := make([][]string, 0, len(list))
	for i, v := range list {
		instance := v.InstancePath
		if instance == "" {
			instance = "/"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), v.Keyword, instance, v.Message, v.SchemaPath})
	}
	return renderTable(
		[]string{"#", "Keyword", "Instance", "Message", "Schema path"},
		rows,
		[]columnAlignment{alignRight},
	)
}
