package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [text]",
	Short: "Split romanized text into syllables",
	Long: `Split each word of the input into its syllables under the source
method. Words print one per line with syllables separated by spaces.

Example:
  romantools segment -m py "Zhongguo tianqi"
  echo "hsiaoming" | romantools segment -m wg`,
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
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

	for _, word := range p.Segment(text) {
		fmt.Println(strings.Join(word, " "))
	}
	return nil
}
