// Command geometa is a minimal driver around the validation library: it
// validates geo metadata documents against a rule set and materializes the
// conformance fixture corpus.
package main

import (
	"errors"
	"fmt"
	"os"

	j "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	geometa "github.com/geoparq/geometa"
	"github.com/geoparq/geometa/conformance"
	"github.com/geoparq/geometa/geoparquet"
	"github.com/geoparq/geometa/ruleset"
)

// errInvalid distinguishes "document has violations" (exit 1) from faults
// such as unreadable input or a bad rule set (exit 2).
var errInvalid = errors.New("document has violations")

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	err := newRootCmd().Execute()
	switch {
	case err == nil:
	case errors.Is(err, errInvalid):
		os.Exit(1)
	default:
		log.Error().Err(err).Msg("geometa failed")
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "geometa",
		Short:         "Validate GeoParquet geo metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newFixturesCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	var rulesetPath string
	var asJSON bool
	var quiet bool
	cmd := &cobra.Command{
		Use:   "validate <document.json>",
		Short: "Validate one geo metadata document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			doc, err := geoparquet.DecodeMetadata(data)
			if err != nil {
				return err
			}
			rs := geoparquet.Current()
			if rulesetPath != "" {
				if rs, err = ruleset.LoadFile(rulesetPath); err != nil {
					return err
				}
			}
			vs := ruleset.Validate(doc, rs)
			if vs.Valid() {
				if !quiet {
					fmt.Fprintln(cmd.OutOrStdout(), "ok")
				}
				return nil
			}
			if !quiet {
				if err := printReports(cmd, geometa.RenderAll(vs), asJSON); err != nil {
					return err
				}
			}
			return errInvalid
		},
	}
	cmd.Flags().StringVar(&rulesetPath, "ruleset", "", "path to a rule-set file (default: embedded canonical rules)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit violations as JSON")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress output; the exit status carries the result")
	return cmd
}

func printReports(cmd *cobra.Command, reports []geometa.Report, asJSON bool) error {
	if asJSON {
		out, err := j.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	for _, r := range reports {
		fmt.Fprintln(cmd.OutOrStdout(), r)
	}
	return nil
}

func newFixturesCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Write the conformance fixture corpus as JSON files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := conformance.WriteFiles(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d fixtures to %s\n", len(conformance.Catalog()), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "fixtures", "directory to write fixture files into")
	return cmd
}
