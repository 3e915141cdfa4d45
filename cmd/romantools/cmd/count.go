package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count [text]",
	Short: "Count syllables per word",
	Long: `Count the syllables of each word in the input. A word containing
any invalid syllable counts as zero.

Example:
  romantools count -m py "Zhongguo tianqi"`,
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	m, err := sourceMethod()
	if err != nil {
		return err
	}
	p, err := buildProcessor(m)
	if err != nil {
		return err
	}

	for i, n := range p.SyllableCounts(text) {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(n)
	}
	fmt.Println()
	return nil
}
