// Command wos reads Web of Science export files.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/henrybloomingdale/wos-cli/internal/output"
	"github.com/henrybloomingdale/wos-cli/internal/wosfile"
	"github.com/spf13/cobra"
)

var (
	flagJSON         bool
	flagHuman        bool
	flagFull         bool
	flagCSV          string
	flagRIS          string
	flagFormat       string
	flagSubdelimiter string
	flagKeepEmpty    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wos",
	Short: "Web of Science export reader",
	Long:  `A command-line interface for reading Web of Science export files, in both the plain-text and tab-delimited formats.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as structured JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagHuman, "human", "H", false, "Rich colorful terminal output")
	rootCmd.PersistentFlags().BoolVar(&flagFull, "full", false, "Show full abstract (with --human)")
	rootCmd.PersistentFlags().StringVar(&flagCSV, "csv", "", "Export records to CSV file")
	rootCmd.PersistentFlags().StringVar(&flagRIS, "ris", "", "Export records to RIS file")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "auto", "Input format: auto, plaintext, or tab")
	rootCmd.PersistentFlags().StringVar(&flagSubdelimiter, "subdelimiter", wosfile.DefaultSubdelimiter, "Separator between parts of multi-value fields")
	rootCmd.PersistentFlags().BoolVar(&flagKeepEmpty, "keep-empty", false, "Keep fields with empty values")

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(tagsCmd)
}

func outputCfg() output.OutputConfig {
	return output.OutputConfig{
		JSON:    flagJSON,
		Human:   flagHuman,
		Full:    flagFull,
		CSVFile: flagCSV,
		RISFile: flagRIS,
	}
}

// parseFormat maps the --format flag to a reader format.
func parseFormat(s string) (wosfile.Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return wosfile.FormatAuto, nil
	case "plaintext", "plain-text", "plain":
		return wosfile.FormatPlainText, nil
	case "tab", "tab-delimited", "tsv":
		return wosfile.FormatTabDelimited, nil
	}
	return wosfile.FormatAuto, fmt.Errorf("unknown format %q (want auto, plaintext, or tab)", s)
}

// readCmd implements the read subcommand.
var readCmd = &cobra.Command{
	Use:   "read <file> [file...]",
	Short: "Read records from export files",
	Long:  `Parse one or more Web of Science export files and print every record, in file order. The format is detected per file unless --format forces one.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(flagFormat)
		if err != nil {
			return err
		}

		records, err := wosfile.ReadRecords(
			wosfile.Open(args, wosfile.WithFormat(format)),
			wosfile.RecordOptions{Subdelimiter: flagSubdelimiter, KeepEmpty: flagKeepEmpty},
		)
		if err != nil {
			return fmt.Errorf("reading records: %w", err)
		}

		return output.FormatRecords(os.Stdout, records, outputCfg())
	},
}

// detectCmd implements the detect subcommand.
var detectCmd = &cobra.Command{
	Use:   "detect <file> [file...]",
	Short: "Detect the export format of files",
	Long:  `Inspect the header of each file and report whether it is a plain-text or tab-delimited Web of Science export.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			format, err := wosfile.DetectFile(path)
			if err != nil {
				return fmt.Errorf("detecting %s: %w", path, err)
			}
			fmt.Fprintf(os.Stdout, "%s: %s\n", path, format)
		}
		return nil
	},
}

// tagsCmd implements the tags subcommand.
var tagsCmd = &cobra.Command{
	Use:   "tags [tag...]",
	Short: "List the field-tag dictionary",
	Long:  `List the Web of Science field tags the reader understands, with their names and whether they hold multi-value content. With arguments, only the named tags are shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags := wosfile.Tags()

		if len(args) > 0 {
			want := make(map[string]bool, len(args))
			for _, a := range args {
				want[strings.ToUpper(a)] = true
			}
			filtered := tags[:0]
			for _, t := range tags {
				if want[t.Tag] {
					filtered = append(filtered, t)
				}
			}
			tags = filtered
			if len(tags) == 0 {
				return fmt.Errorf("no matching tags")
			}
		}

		return output.FormatTags(os.Stdout, tags, outputCfg())
	},
}
