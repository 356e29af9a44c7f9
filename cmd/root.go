package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arvidh/docread/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docread",
	Short: "Serve a Markdown book as a single-page documentation reader",
	Long: `Docread turns an ordered list of Markdown chapters into a browsable
documentation reader. Chapters are loaded on demand, rendered once and
cached, searchable by keyword, and trackable as read/unread. It can also
export the whole book as a static HTML site.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docread.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads and validates the configuration for commands that need it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}
