package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arvidh/docread/internal/reader"
	"github.com/arvidh/docread/internal/server"
	"github.com/arvidh/docread/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the documentation reader server",
	Long:  `Starts the HTTP server hosting the single-page reader UI and its JSON API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	serveCmd.Flags().Bool("watch", false, "watch the content directory and live-reload browsers")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if w, _ := cmd.Flags().GetBool("watch"); w {
		cfg.Server.Watch = true
	}

	rd := reader.New(cfg.Title, buildSequence(cfg), buildLoader(cfg), buildRenderer(cfg), buildIndex(cfg))

	// Live reload only works against a local content directory.
	var hub *watch.Hub
	if cfg.Server.Watch && cfg.BaseURL == "" {
		hub = watch.NewHub()
		watcher, err := watch.NewWatcher(cfg.ContentDir, 0, func() {
			rd.Refresh()
			hub.Broadcast(watch.ReloadMessage)
		})
		if err != nil {
			return fmt.Errorf("starting content watcher: %w", err)
		}
		defer watcher.Close()
		fmt.Fprintf(os.Stderr, "Watching %s for changes\n", cfg.ContentDir)
	}

	srv := server.New(server.Config{
		Port:       cfg.Server.Port,
		AllowAll:   cfg.Server.AllowAll,
		DebounceMS: cfg.Search.DebounceMS,
	}, rd, hub)

	fmt.Printf("Serving %q on http://localhost:%d\n", cfg.Title, cfg.Server.Port)
	return srv.Start()
}
