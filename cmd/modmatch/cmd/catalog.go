package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the modification catalog",
	Long: `Catalog prints the built-in UniMod subset merged with --catalog. The toml and
yaml formats write a file --catalog can load back.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFormat, "format", "tsv", "Output format: tsv, toml, yaml")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(catalogFormat) {
	case "toml":
		return rt.catalog.EncodeTOML(out)
	case "yaml", "yml":
		return rt.catalog.EncodeYAML(out)
	case "tsv":
	default:
		return fmt.Errorf("invalid format '%s', must be tsv, toml, or yaml", catalogFormat)
	}

	fmt.Fprintln(out, "name\taas\tterminus\tunimod\tmass\tlabels\tlabel_type")
	for _, m := range rt.catalog.Mods() {
		unimod := ""
		if m.UniModID != 0 {
			unimod = strconv.Itoa(m.UniModID)
		}
		mass := ""
		if m.MonoMass != 0 {
			mass = strconv.FormatFloat(m.MonoMass, 'f', -1, 64)
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Name, m.AAs, m.Terminus, unimod, mass, m.Labels, m.LabelType)
	}
	return nil
}
