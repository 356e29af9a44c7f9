package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arvidh/docread/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize docread configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the book and generates a .docread.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.ConfigExists(cfgFile) {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", cfgFile)
			}
		}
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
