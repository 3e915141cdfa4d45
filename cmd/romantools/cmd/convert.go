package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JHGFD82/RoManTools/internal/clipboard"
	"github.com/JHGFD82/RoManTools/internal/romanize"
)

var convertCmd = &cobra.Command{
	Use:   "convert [text]",
	Short: "Convert romanized text between Pinyin and Wade-Giles",
	Long: `Convert every word of the input from the source method into the
target. Syllables that cannot be converted are marked inline with (!),
or (!rare!) for syllables with no counterpart in the target system.

Example:
  romantools convert -m py --to wg "ni hao chang'an"
  romantools convert -m wg --to py "ch'ang-an"`,
	RunE: runConvert,
}

var convertCopy bool

func init() {
	convertCmd.Flags().String("to", "", "target romanization method: py or wg")
	convertCmd.Flags().BoolVarP(&convertCopy, "copy", "c", false, "also copy the result to the clipboard")
	rootCmd.AddCommand(convertCmd)
}

// targetMethod resolves the conversion target from the --to flag,
// environment or config file, in that order. With no explicit target
// it falls back to whichever method is not the source.
func targetMethod(source romanize.Method, tag string) (romanize.Method, error) {
	if tag == "" {
		tag = viper.GetString("target")
	}
	if tag == "" {
		tag = loadUserConfig().Target
	}
	if tag == "" {
		if source == romanize.Pinyin {
			return romanize.WadeGiles, nil
		}
		return romanize.Pinyin, nil
	}
	to, err := romanize.ParseMethod(tag)
	if err != nil {
		return 0, err
	}
	if to == source {
		if source == romanize.Pinyin {
			return romanize.WadeGiles, nil
		}
		return romanize.Pinyin, nil
	}
	return to, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
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

	out, err := p.Convert(text, to)
	if err != nil {
		return err
	}
	fmt.Println(out)

	if convertCopy {
		if !clipboard.Available() {
			fmt.Fprintln(os.Stderr, "Warning: no clipboard tool found")
		} else if err := clipboard.Write(out); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: clipboard copy failed:", err)
		}
	}
	return nil
}
