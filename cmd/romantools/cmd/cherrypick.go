package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cherryPickCmd = &cobra.Command{
	Use:     "cherrypick [text]",
	Aliases: []string{"cherry"},
	Short:   "Convert only the romanized words inside mixed prose",
	Long: `Convert the words of the input that fully parse in the source
method, leaving English words, punctuation and spacing untouched. Names
with trailing contractions (Chang's) convert with the contraction kept,
and common English words that happen to parse (so, me, an) are left
alone.

Example:
  romantools cherrypick -m py --to wg "Welcome to Zhongguo"`,
	RunE: runCherryPick,
}

func init() {
	cherryPickCmd.Flags().String("to", "", "target romanization method: py or wg")
	rootCmd.AddCommand(cherryPickCmd)
}

func runCherryPick(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	m, err := sourceMethod()
	if err != nil {
		return err
	}
	tag, _ := cmd.Flags().GetString("to")
	to, err := targetMethod(m, tag)
	if err != nil {
		return err
	}
	p, err := buildProcessor(m)
	if err != nil {
		return err
	}

	out, err := p.CherryPick(text, to)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
