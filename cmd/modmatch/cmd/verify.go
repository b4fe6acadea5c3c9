package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/modmatch/pkg/matcher"
	"github.com/ChrisMcGann/modmatch/pkg/reader/peplist"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [sequences...]",
	Short: "Check that the configured modifications explain each sequence",
	Long: `Verify compares the annotated masses of each sequence with the masses the
configured static and isotope-label modifications put on every residue. Light
annotations must match the light calculator; heavy {..} annotations must match
the difference between a label type's calculator and the light one.

Example:
  modmatch verify --static Carbamidomethyl --heavy heavy=Label:13C(6)15N(2) 'AC[57.02146]DEFK{8.014199}'`,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	if rt.settings.Empty() {
		return fmt.Errorf("no modifications configured: use --static, --heavy or a config file")
	}

	seqs := args
	if len(seqs) == 0 {
		seqs, err = peplist.ReadAll(cmd.InOrStdin(), peplist.Options{})
		if err != nil {
			return fmt.Errorf("error reading sequences: %w", err)
		}
	}

	m := matcher.New(rt.catalog, rt.sep, nil)
	checker := matcher.NewChecker(m, rt.settings)
	out := cmd.OutOrStdout()
	for _, seq := range seqs {
		v, err := checker.MatchSettings(seq)
		if err != nil {
			return err
		}
		switch {
		case v.Matched && v.LabelType != "":
			fmt.Fprintf(out, "%s\tmatched\t%s\n", seq, v.LabelType)
		case v.Matched:
			fmt.Fprintf(out, "%s\tmatched\tlight\n", seq)
		default:
			fmt.Fprintf(out, "%s\tmismatch\t%s\n", seq, v.Fragment)
			m.Tracker().Add(v.Fragment)
		}
	}
	return m.Tracker().Err()
}
