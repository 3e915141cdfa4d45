package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [text]",
	Short: "Check whether text is valid under the source method",
	Long: `Check that every syllable of the input parses as a valid syllable
of the source method. Prints true or false and exits nonzero on false,
so it composes in shell pipelines.

With --report, each invalid syllable is listed with the reason it
failed to parse.

Example:
  romantools validate -m py "ni hao"
  romantools validate -m py --report "ni hao xyz"`,
	RunE: runValidate,
}

var (
	validateQuiet  bool
	validateReport bool
)

func init() {
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "no output, exit status only")
	validateCmd.Flags().BoolVar(&validateReport, "report", false, "list invalid syllables with diagnostics")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	ok := p.Validate(text)
	if !validateQuiet {
		fmt.Println(ok)
	}
	if validateReport && !ok {
		for _, c := range p.Chunks(text, false) {
			for _, s := range c.Syllables {
				for _, d := range s.Diagnostics {
					fmt.Fprintf(os.Stderr, "%s: %s\n", c.Text, d)
				}
			}
		}
	}
	if !ok {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("invalid %s text", m.Name())
	}
	return nil
}
