package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChrisMcGann/modmatch/pkg/matcher"
	"github.com/ChrisMcGann/modmatch/pkg/reader/msp"
	"github.com/ChrisMcGann/modmatch/pkg/reader/peplist"
	"github.com/ChrisMcGann/modmatch/pkg/watch"
	"github.com/ChrisMcGann/modmatch/pkg/writer/sqlite"
)

var (
	// Flags for match command
	inputFile   string
	inputFormat string
	column      string
	outputFile  string
	watchFiles  bool
)

var matchCmd = &cobra.Command{
	Use:   "match [sequences...]",
	Short: "Match the annotations of a batch of sequences",
	Long: `Match reads annotated peptide sequences, resolves every annotation against the
configured modifications and the catalog, and reports the annotations that could
not be interpreted, once, after the whole batch.

Without --out the resolved sites are printed as TSV.

Examples:
  # Match a plain list, one sequence per line
  modmatch match --in peptides.txt

  # Match the sequences of a spectral library into a database
  modmatch match --in library.msp --out matches.db --static Carbamidomethyl

  # Match a column of a TSV export with isotope labels, re-running on change
  modmatch match --in export.tsv --column "Modified Sequence" --heavy heavy=Label:13C(6)15N(2) --watch`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&inputFile, "in", "i", "", "Input file path ('-' for stdin)")
	matchCmd.Flags().StringVarP(&inputFormat, "from", "f", "", "Input format: list, csv, tsv, msp, sptxt (auto-detect if not specified)")
	matchCmd.Flags().StringVar(&column, "column", "", "Header of the sequence column in csv/tsv input (default first column, no header)")
	matchCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output database file")
	matchCmd.Flags().BoolVar(&watchFiles, "watch", false, "Re-run when the input, catalog or config file changes")
	matchCmd.Flags().Int("workers", 1, "Number of worker goroutines")
	matchCmd.Flags().Bool("keep-going", false, "Record sequences that fail to parse instead of stopping")

	bindFlags(matchCmd.Flags(), map[string]string{
		"workers":    "workers",
		"keep-going": "keep_going",
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	if inputFile == "" && len(args) == 0 {
		return fmt.Errorf("no sequences: pass them as arguments or use --in")
	}
	if watchFiles && (inputFile == "" || inputFile == "-") {
		return fmt.Errorf("--watch needs an input file")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	err = matchOnce(ctx, cmd, rt, args)
	if !watchFiles {
		return err
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	w, err := watch.NewWatcher(inputFile, rt.cfg.Catalog, viper.ConfigFileUsed())
	if err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}
	defer w.Stop()
	rt.logger.Info("watching for changes", "files", strings.Join(w.Files(), ","))

	for {
		select {
		case <-ctx.Done():
			return nil
		case change := <-w.Changes:
			rt.logger.Info("file changed", "file", change.File, "change", change.Kind.String())
			if change.Kind == watch.ChangeRemoved {
				continue
			}
			_ = viper.ReadInConfig()
			next, err := loadRuntime()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				continue
			}
			rt = next
			if err := matchOnce(ctx, cmd, rt, args); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		}
	}
}

// matchOnce runs one batch over the input and reports it.
func matchOnce(ctx context.Context, cmd *cobra.Command, rt *runtime, args []string) error {
	seqs := args
	if inputFile != "" {
		var err error
		seqs, err = readSequences(cmd.InOrStdin(), inputFile, inputFormat, column)
		if err != nil {
			return err
		}
	}

	res, err := matcher.Batch(ctx, rt.catalog, seqs, matcher.BatchOptions{
		Options: matcher.Options{
			DecimalSeparator: rt.sep,
			Settings:         rt.settings,
			Strict:           rt.cfg.StrictSettings,
			Logger:           rt.logger,
		},
		Workers:   rt.cfg.Workers,
		KeepGoing: rt.cfg.KeepGoing,
	})
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	summary := cmd.OutOrStdout()
	if outputFile != "" {
		if err := writeDatabase(res, seqs); err != nil {
			return err
		}
	} else {
		writeTSV(cmd.OutOrStdout(), res)
		summary = cmd.ErrOrStderr()
	}

	fromSettings := 0
	for i, r := range res.Results {
		if res.Errors[i] != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: sequence %d: %v\n", i+1, res.Errors[i])
			continue
		}
		if r.FromSettings {
			fromSettings++
		}
	}

	fmt.Fprintf(summary, "\nMatching complete!\n")
	fmt.Fprintf(summary, "Processed: %s sequences\n", humanize.Comma(int64(len(seqs))))
	fmt.Fprintf(summary, "Explained by settings: %s\n", humanize.Comma(int64(fromSettings)))
	if failed := res.Failed(); failed > 0 {
		fmt.Fprintf(summary, "Failed: %s sequences\n", humanize.Comma(int64(failed)))
	}
	if outputFile != "" {
		fmt.Fprintf(summary, "Output: %s\n", outputFile)
	}

	if err := res.Err(); err != nil {
		return err
	}
	if failed := res.Failed(); failed > 0 {
		return fmt.Errorf("%s sequences could not be parsed", humanize.Comma(int64(failed)))
	}
	return nil
}

func writeDatabase(res *matcher.BatchResult, seqs []string) error {
	source := inputFile
	if source == "" || source == "-" {
		source = "stdin"
	}
	writer, err := sqlite.NewWriter(outputFile, source)
	if err != nil {
		return fmt.Errorf("failed to create output database: %w", err)
	}

	for i, r := range res.Results {
		if res.Errors[i] != nil {
			err = writer.WriteFailure(seqs[i], res.Errors[i])
		} else {
			err = writer.WriteResult(r)
		}
		if err != nil {
			writer.Abort()
			return fmt.Errorf("failed to write sequence %d: %w", i+1, err)
		}
	}

	if err := writer.Finalize(res.Unmatched.Report()); err != nil {
		return fmt.Errorf("failed to finalize database: %w", err)
	}
	return nil
}

// writeTSV prints one row per site.
func writeTSV(out io.Writer, res *matcher.BatchResult) {
	fmt.Fprintln(out, "sequence\tindex\taa\tannotation\theavy\tmodification\tmass\tfrom_settings")
	for i, r := range res.Results {
		if res.Errors[i] != nil {
			continue
		}
		for _, site := range r.Sites {
			annotation := ""
			if a := site.Annotation; a != nil {
				annotation = string(a.Family.Open()) + a.Content + string(a.Family.Close())
			}
			name, mass := "", ""
			if site.Resolved {
				name = site.Mod.Name
				mass = strconv.FormatFloat(site.Mod.MassFor(site.Key.AA), 'f', -1, 64)
			}
			fmt.Fprintf(out, "%s\t%d\t%c\t%s\t%t\t%s\t%s\t%t\n",
				r.Sequence, site.IndexAA+1, site.Key.AA, annotation, site.Key.Heavy, name, mass, r.FromSettings)
		}
	}
}

// readSequences reads every sequence of the input file in the given or
// detected format.
func readSequences(stdin io.Reader, path, format, column string) ([]string, error) {
	if format == "" {
		format = detectFormat(path)
	}
	format = strings.ToLower(format)

	var in io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		in = f
	}

	switch format {
	case "msp", "sptxt":
		reader := msp.NewReader(in)
		var seqs []string
		for reader.Next() {
			seqs = append(seqs, reader.Entry().Sequence)
		}
		if err := reader.Err(); err != nil {
			return nil, fmt.Errorf("error reading input file: %w", err)
		}
		return seqs, nil
	case "csv", "tsv":
		return peplist.ReadAll(in, peplist.OptionsForPath("."+format, column))
	case "list":
		return peplist.ReadAll(in, peplist.Options{})
	}
	return nil, fmt.Errorf("invalid input format '%s', must be list, csv, tsv, msp, or sptxt", format)
}

func detectFormat(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".msp", ".sptxt":
		return ext[1:]
	case ".csv":
		return "csv"
	case ".tsv", ".tab":
		return "tsv"
	}
	return "list"
}
