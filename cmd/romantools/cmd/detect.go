package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JHGFD82/RoManTools/internal/romanize"
)

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Detect which romanization system(s) the text is written in",
	Long: `Report the methods under which the entire input parses as valid.
Text that is valid in both systems reports both; text valid in neither
reports none.

With --per-word, each whitespace-separated word is detected on its own.

Example:
  romantools detect "hsiaoming"
  romantools detect --per-word "zhongguo hsiaoming"`,
	RunE: runDetect,
}

var detectPerWord bool

func init() {
	detectCmd.Flags().BoolVar(&detectPerWord, "per-word", false, "detect each word separately")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	if !detectPerWord {
		ms, err := romanize.Detect(text)
		if err != nil {
			return err
		}
		fmt.Println(formatMethods(ms))
		return nil
	}

	words, err := romanize.DetectWords(text)
	if err != nil {
		return err
	}
	for _, w := range words {
		fmt.Printf("%s\t%s\n", w.Word, formatMethods(w.Methods))
	}
	return nil
}

func formatMethods(ms []romanize.Method) string {
	if len(ms) == 0 {
		return "none"
	}
	tags := make([]string, len(ms))
	for i, m := range ms {
		tags[i] = m.String()
	}
	return strings.Join(tags, " ")
}
