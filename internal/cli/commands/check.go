package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/shadergate/internal/cli/output"
	"github.com/leapstack-labs/shadergate/internal/config"
	"github.com/leapstack-labs/shadergate/internal/scan"
	"github.com/leapstack-labs/shadergate/pkg/diag"
	"github.com/leapstack-labs/shadergate/pkg/gate"
	"github.com/leapstack-labs/shadergate/pkg/profile"
	"github.com/leapstack-labs/shadergate/pkg/token"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// debounce interval for filesystem events in watch mode.
const watchDebounce = 100 * time.Millisecond

// fileReport is the outcome of checking one compile unit.
type fileReport struct {
	Path        string            `json:"path"`
	Profile     string            `json:"profile"`
	Version     int               `json:"version"`
	Requested   []string          `json:"requested,omitempty"`
	Diagnostics []diag.Diagnostic `json:"diagnostics,omitempty"`
	Errors      int               `json:"errors"`
	Warnings    int               `json:"warnings"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Check #version/#extension directives of shader files",
		Long: `Scan shader files for #version and #extension lines, apply them to a
fresh gate per file, and report every diagnostic: unknown extensions,
invalid behaviors, partial support, and 'all' misuse.

Each file is an independent compile unit with its own gate, so files
are checked in parallel. A #version line in the file overrides the
configured profile and version for that file.`,
		Example: `  # Check two shaders against an ES 3.10 baseline
  shadergate check --profile es --glsl-version 310 a.frag b.frag

  # Re-check on every change
  shadergate check --watch shader.vert

  # Machine-readable report
  shadergate check -o json shader.vert`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := loadJob(cmd)
			if err != nil {
				return err
			}
			r := newRenderer(cmd, job)
			if watch {
				return watchFiles(cmd.Context(), r, job, args)
			}
			return checkOnce(cmd.Context(), r, job, args)
		},
	}
	addJobFlags(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-check files when they change")
	return cmd
}

// checkOnce checks every file in parallel and renders the reports.
// Returns an error when any file produced error diagnostics, so the
// exit code reflects the overall result.
func checkOnce(ctx context.Context, r *output.Renderer, job *config.Job, files []string) error {
	reports := make([]*fileReport, len(files))

	eg, _ := errgroup.WithContext(ctx)
	for i, path := range files {
		i, path := i, path
		eg.Go(func() error {
			rep, err := checkFile(job, path)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	errors := 0
	for _, rep := range reports {
		errors += rep.Errors
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(reports); err != nil {
			return err
		}
	} else {
		for _, rep := range reports {
			renderReport(r, rep)
		}
	}

	if errors > 0 {
		return fmt.Errorf("%d error(s) in %d file(s)", errors, len(files))
	}
	return nil
}

// checkFile runs one compile unit through its own gate.
func checkFile(job *config.Job, path string) (*fileReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanned, err := scan.Source(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg, err := job.GateConfig()
	if err != nil {
		return nil, err
	}

	// A #version line in the source overrides the configured baseline.
	if scanned.Version > 0 {
		cfg.Version = scanned.Version
		if p, ok := profile.Parse(scanned.Profile); ok {
			cfg.Profile = p
		}
	}

	var sink diag.Collector
	g := gate.New(cfg, &sink)

	// Configured extension directives come first, in stable order.
	for _, id := range sortedKeys(job.Extensions) {
		g.ApplyDirective(token.Position{}, id, job.Extensions[id])
	}
	for _, d := range scanned.Directives {
		g.ApplyDirective(d.Pos, d.ID, d.Behavior)
	}

	return &fileReport{
		Path:        path,
		Profile:     cfg.Profile.String(),
		Version:     cfg.Version,
		Requested:   g.RequestedExtensions(),
		Diagnostics: sink.All(),
		Errors:      sink.ErrorCount(),
		Warnings:    len(sink.Warnings()),
	}, nil
}

func renderReport(r *output.Renderer, rep *fileReport) {
	r.Header(2, fmt.Sprintf("%s (%s, version %d)", rep.Path, rep.Profile, rep.Version))
	for _, d := range rep.Diagnostics {
		switch d.Severity {
		case diag.SeverityError:
			r.Errorf("  %s", d)
		case diag.SeverityWarning:
			r.Warningf("  %s", d)
		default:
			r.Println("  " + d.String())
		}
	}
	if rep.Errors == 0 && rep.Warnings == 0 {
		r.Successf("  ok")
	} else {
		r.Printf("  %d error(s), %d warning(s)\n", rep.Errors, rep.Warnings)
	}
}

// watchFiles re-checks files whenever they change, until the context is
// cancelled.
func watchFiles(ctx context.Context, r *output.Renderer, job *config.Job, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the containing directories: editors often replace files on
	// save, which drops a watch on the file itself.
	watched := make(map[string]struct{})
	targets := make(map[string]struct{}, len(files))
	for _, path := range files {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		targets[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := watched[dir]; !ok {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watched[dir] = struct{}{}
		}
	}

	// Initial pass. Errors in the files are reported, not fatal: watch
	// mode keeps going so the next save can fix them.
	if err := checkOnce(ctx, r, job, files); err != nil {
		r.Errorf("%v", err)
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := targets[abs]; !ok {
				continue
			}
			// Debounce: editors fire several events per save.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Errorf("watch error: %v", err)
		case <-pending:
			r.Println()
			if err := checkOnce(ctx, r, job, files); err != nil {
				r.Errorf("%v", err)
			}
		}
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
