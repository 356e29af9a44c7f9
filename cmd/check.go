package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the configuration and chapter sources",
	Long: `Validates the configuration and verifies that every chapter's source
file exists. Chapters without a file mapping are reported: the reader
silently skips them, so they are easy to miss.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	problems := 0
	for _, ch := range cfg.Book {
		switch {
		case ch.File == "":
			fmt.Printf("  MISSING  %s: no source file mapped\n", ch.ID)
			problems++
		case cfg.BaseURL != "":
			if err := checkRemote(cfg.BaseURL, ch.File); err != nil {
				fmt.Printf("  ERROR    %s: %v\n", ch.ID, err)
				problems++
			} else if verbose {
				fmt.Printf("  OK       %s\n", ch.ID)
			}
		default:
			path := filepath.Join(cfg.ContentDir, filepath.FromSlash(ch.File))
			if _, err := os.Stat(path); err != nil {
				fmt.Printf("  ERROR    %s: %s not found\n", ch.ID, path)
				problems++
			} else if verbose {
				fmt.Printf("  OK       %s\n", ch.ID)
			}
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d of %d chapters have source problems", problems, len(cfg.Book))
	}
	fmt.Printf("All %d chapters check out\n", len(cfg.Book))
	return nil
}

// checkRemote issues a HEAD request for a remote chapter source.
func checkRemote(baseURL, file string) error {
	u, err := url.JoinPath(baseURL, file)
	if err != nil {
		return err
	}
	resp, err := http.Head(u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned %s", u, resp.Status)
	}
	return nil
}
