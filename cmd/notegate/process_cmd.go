package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/notegate/internal/config"
	"github.com/sgx-labs/notegate/internal/metadata"
	"github.com/sgx-labs/notegate/internal/processor"
	"github.com/sgx-labs/notegate/internal/spotlight"
	"github.com/sgx-labs/notegate/internal/textsub"
)

func processCmd() *cobra.Command {
	var metaOnly bool
	cmd := &cobra.Command{
		Use:   "process <file>...",
		Short: "Run the metadata pipeline on one or more notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(args, metaOnly)
		},
	}
	cmd.Flags().BoolVar(&metaOnly, "meta-only", false, "Print the metadata record without the note content")
	return cmd
}

func runProcess(paths []string, metaOnly bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	proc, err := buildProcessor(cfg, &jsonSink{w: os.Stdout, metaOnly: metaOnly})
	if err != nil {
		return err
	}

	for _, path := range paths {
		if err := proc.Run(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func buildProcessor(cfg *config.Config, sink processor.Sink) (*processor.Processor, error) {
	sub := textsub.Sed{Bin: cfg.Tools.Sed}
	q := spotlight.MDLS{Bin: cfg.Tools.MDLS}
	return processor.New(cfg, sub, q, sink)
}

// jsonSink prints each processed note as a JSON object on stdout. It
// stands in for the note-creation service during manual runs.
type jsonSink struct {
	w        io.Writer
	metaOnly bool
}

func (s *jsonSink) CreateNote(rec metadata.Record, content string) error {
	out := map[string]any{"metadata": rec}
	if !s.metaOnly {
		out["content"] = content
	}
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
