package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/modmatch/pkg/matcher"
	"github.com/ChrisMcGann/modmatch/pkg/reader/peplist"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [sequences...]",
	Short: "Rewrite unimod:<id> annotations into light/heavy bracket form",
	Long: `Simplify rewrites the delimiters of every unimod:<id> annotation to [..] for
structural modifications and {..} for isotope labels. Other annotations are left
as written. Without arguments sequences are read from stdin, one per line.

Example:
  modmatch simplify 'PEPK(unimod:259)' 'AC{unimod:4}DEFK'`,
	RunE: runSimplify,
}

func runSimplify(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	seqs := args
	if len(seqs) == 0 {
		seqs, err = peplist.ReadAll(cmd.InOrStdin(), peplist.Options{})
		if err != nil {
			return fmt.Errorf("error reading sequences: %w", err)
		}
	}

	m := matcher.New(rt.catalog, rt.sep, nil)
	for _, seq := range seqs {
		simplified, err := m.SimplifyUniMod(seq)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), simplified)
	}
	return nil
}
