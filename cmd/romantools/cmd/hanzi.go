package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JHGFD82/RoManTools/internal/hanzi"
	"github.com/JHGFD82/RoManTools/internal/romanize"
)

var hanziCmd = &cobra.Command{
	Use:   "hanzi [text]",
	Short: "Romanize Chinese character text",
	Long: `Convert Chinese characters to pinyin. With --to wg the pinyin is
then converted on to Wade-Giles; --tones keeps tone marks instead
(tone-marked text cannot be converted further).

Example:
  romantools hanzi 中国
  romantools hanzi --to wg 中国
  romantools hanzi --tones 你好`,
	RunE: runHanzi,
}

var hanziTones bool

func init() {
	hanziCmd.Flags().BoolVar(&hanziTones, "tones", false, "keep tone marks on the pinyin")
	hanziCmd.Flags().String("to", "", "convert the pinyin on to this method")
	rootCmd.AddCommand(hanziCmd)
}

func runHanzi(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	out := hanzi.NewRomanizer(hanziTones).Romanize(text)

	tag, _ := cmd.Flags().GetString("to")
	if tag != "" {
		if hanziTones {
			return fmt.Errorf("--tones and --to cannot be combined")
		}
		to, err := romanize.ParseMethod(tag)
		if err != nil {
			return err
		}
		if to != romanize.Pinyin {
			p, err := buildProcessor(romanize.Pinyin)
			if err != nil {
				return err
			}
			out, err = p.CherryPick(out, to)
			if err != nil {
				return err
			}
		}
	}

	fmt.Println(out)
	return nil
}
