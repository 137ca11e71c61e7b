// Package watcher monitors the inbox for new notes and feeds them to the
// processor.
package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sgx-labs/notegate/internal/processor"
)

const debounceDelay = 2 * time.Second

// Watch processes every markdown file dropped into the inbox. It blocks
// until the watcher fails; per-file processing errors are reported and do
// not stop the loop. No state survives between events — a redelivered
// file simply runs through the pipeline again.
func Watch(proc *processor.Processor, inbox string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dirs := walkDirs(inbox)
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			fmt.Fprintf(os.Stderr, "  [WARN] Could not watch %s: %v\n", d, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Watching %d directories under %s\n", len(dirs), inbox)
	fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop.\n\n")

	// Debounce: editors and drag-drop fire several events per file, so
	// collect paths over a window before running the pipeline.
	var (
		mu      sync.Mutex
		pending = make(map[string]bool)
		timer   *time.Timer
	)

	flush := func() {
		mu.Lock()
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		pending = make(map[string]bool)
		mu.Unlock()

		processFiles(proc, paths)
	}

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !IsNote(event.Name) {
				// Watch directories created inside the inbox.
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := w.Add(event.Name); err != nil {
							fmt.Fprintf(os.Stderr, "  [WARN] Could not watch %s: %v\n", event.Name, err)
						}
					}
				}
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				mu.Lock()
				pending[event.Name] = true
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceDelay, flush)
				mu.Unlock()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "  [WARN] Watch error: %v\n", err)
		}
	}
}

// IsNote reports whether a path looks like a markdown note the pipeline
// should pick up. Dotfiles are skipped.
func IsNote(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".markdown")
}

func processFiles(proc *processor.Processor, paths []string) {
	for _, fp := range paths {
		info, err := os.Stat(fp)
		if err != nil {
			// Gone before the debounce flushed; nothing to process.
			continue
		}
		if info.IsDir() {
			continue
		}

		if err := proc.Run(fp); err != nil {
			fmt.Fprintf(os.Stderr, "  [ERROR] %s: %v\n", fp, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "  Processed: %s\n", fp)
	}
}

func walkDirs(root string) []string {
	var dirs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}
