// Package cmd contains all CLI commands for the RoManTools tool.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JHGFD82/RoManTools/internal/config"
	"github.com/JHGFD82/RoManTools/internal/data"
	"github.com/JHGFD82/RoManTools/internal/romanize"
	"github.com/JHGFD82/RoManTools/internal/tui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "romantools",
	Short: "Mandarin romanization toolkit - Pinyin and Wade-Giles",
	Long: `RoManTools works with Mandarin romanization text in Hanyu Pinyin
and Wade-Giles.

It can:
  - segment romanized words into syllables
  - validate text against a romanization system
  - count syllables per word
  - detect which system(s) a text is written in
  - convert between Pinyin and Wade-Giles
  - cherry-pick and convert romanized terms inside English prose
  - romanize Chinese character text via pinyin

Running 'romantools' without arguments launches the interactive TUI.`,
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/romantools)")
	rootCmd.PersistentFlags().StringP("method", "m", "", "source romanization method: py or wg")
	rootCmd.PersistentFlags().Bool("crumbs", false, "trace segmentation decisions on stderr")
	rootCmd.PersistentFlags().Int("cache-size", 0, "bound the engine caches (0 = default)")
	rootCmd.PersistentFlags().String("scheme", "", "YAML scheme file overriding the built-in syllabary")

	viper.BindPFlag("method", rootCmd.PersistentFlags().Lookup("method"))
	viper.BindPFlag("crumbs", rootCmd.PersistentFlags().Lookup("crumbs"))
	viper.BindPFlag("cache_size", rootCmd.PersistentFlags().Lookup("cache-size"))
	viper.BindPFlag("scheme", rootCmd.PersistentFlags().Lookup("scheme"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("ROMANTOOLS")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadUserConfig loads config.yaml, falling back to defaults.
func loadUserConfig() *config.Config {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: ignoring config file:", err)
		return config.Default()
	}
	return cfg
}

// sourceMethod resolves the source method from flag, environment or
// config file, in that order.
func sourceMethod() (romanize.Method, error) {
	tag := viper.GetString("method")
	if tag == "" {
		tag = loadUserConfig().Method
	}
	return romanize.ParseMethod(tag)
}

// buildProcessor assembles a processor for a method, honoring the
// crumbs flag, cache size, and any custom scheme from the config file.
func buildProcessor(m romanize.Method) (*romanize.Processor, error) {
	cfg := loadUserConfig()

	var opts []romanize.Option
	if viper.GetBool("crumbs") || cfg.Crumbs {
		opts = append(opts, romanize.WithObserver(newCrumbTrail(os.Stderr)))
	}
	if n := viper.GetInt("cache_size"); n > 0 {
		opts = append(opts, romanize.WithCacheSize(n))
	} else if cfg.CacheSize > 0 {
		opts = append(opts, romanize.WithCacheSize(cfg.CacheSize))
	}
	path := viper.GetString("scheme")
	if path == "" {
		path = cfg.SchemePath(m.String())
	}
	if path != "" {
		syl, err := data.LoadScheme(path)
		if err != nil {
			return nil, fmt.Errorf("loading scheme for %s: %w", m, err)
		}
		opts = append(opts, romanize.WithTable(romanize.NewTable(syl)))
	}
	return romanize.New(m, opts...)
}

// readInput joins the positional args into the input text, or reads
// stdin when no args were given (or the single arg "-").
func readInput(args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(raw), "\n"), nil
}

// runInteractive launches the TUI application.
func runInteractive(cmd *cobra.Command, args []string) error {
	m, err := sourceMethod()
	if err != nil {
		m = romanize.Pinyin
	}

	p := tea.NewProgram(
		tui.NewApp(m),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
