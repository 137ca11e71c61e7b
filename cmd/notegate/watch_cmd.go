package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/notegate/internal/config"
	"github.com/sgx-labs/notegate/internal/watcher"
)

func watchCmd() *cobra.Command {
	var inbox string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the inbox and process notes as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(inbox)
		},
	}
	cmd.Flags().StringVar(&inbox, "inbox", "", "Inbox directory (overrides config)")
	return cmd
}

func runWatch(inbox string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir := cfg.InboxPath()
	if inbox != "" {
		dir = config.ExpandHome(inbox)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("inbox %s is not a directory", dir)
	}

	proc, err := buildProcessor(cfg, &jsonSink{w: os.Stdout})
	if err != nil {
		return err
	}
	return watcher.Watch(proc, dir)
}
