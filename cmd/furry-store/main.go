// Command furry-store replays a stream of action records against a fresh
// store and prints the resulting state.
//
// Records are YAML documents of the form {type, payload}, one per document
// or as a sequence:
//
//   - type: todos/addTodo
//     payload: Buy milk
//   - type: counter/incrementByAmount
//     payload: 5
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/odvcencio/furry-store/app"
	"github.com/odvcencio/furry-store/config"
	"github.com/odvcencio/furry-store/report"
	"github.com/odvcencio/furry-store/runtime"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "furry-store: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("furry-store", flag.ContinueOnError)
	fs.SetOutput(stderr)
	script := fs.String("f", "-", "action script to replay; - reads stdin")
	output := fs.String("o", cfg.Output, "output format: auto, table, yaml, markdown or html")
	empty := fs.Bool("empty", !cfg.SeedSamples, "start without the sample tasks")
	width := fs.Int("width", cfg.MaxTextWidth, "maximum task text width in table output")
	listTypes := fs.Bool("types", false, "print the recognised action types and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !config.ValidOutput(*output) {
		return fmt.Errorf("unknown output format %q", *output)
	}

	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		return err
	}
	registry := app.NewRegistry()
	if *listTypes {
		for _, typ := range registry.Types() {
			fmt.Fprintln(stdout, typ)
		}
		return nil
	}

	src := stdin
	if *script != "-" {
		f, err := os.Open(*script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		src = f
	}
	actions, err := registry.DecodeAll(src)
	if err != nil {
		return fmt.Errorf("read script %s: %w", *script, err)
	}

	opts := []app.Option{app.WithLogger(logger)}
	if *empty {
		opts = append(opts, app.WithoutSamples())
	}
	store := app.NewStore(opts...)

	loop := runtime.NewLoop(runtime.LoopConfig{
		Dispatcher:    store,
		MessageBuffer: max(cfg.MessageBuffer, len(actions)+2),
		Logger:        logger,
	})
	unsub := store.SubscribeWithScheduler(loop.StateScheduler(), func() {
		logger.Debug("state changed", slog.Uint64("version", store.Version()))
	})
	defer unsub()

	for _, a := range actions {
		loop.Post(runtime.ActionMsg{Action: a})
	}
	loop.Post(runtime.StopMsg{})
	if err := loop.Run(ctx); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	logger.Debug("replay finished",
		slog.Int("actions", len(actions)),
		slog.Uint64("version", store.Version()),
	)

	return render(stdout, store.State(), *output, *width)
}

func render(w io.Writer, root *app.RootState, mode string, width int) error {
	tty := isTerminal(w)
	if mode == config.OutputAuto {
		mode = config.OutputYAML
		if tty {
			mode = config.OutputTable
		}
	}
	switch mode {
	case config.OutputTable:
		return report.Table(w, root, report.TableOptions{MaxTextWidth: width})
	case config.OutputMarkdown:
		return report.Markdown(w, root)
	case config.OutputHTML:
		return report.HTML(w, root)
	default:
		if !tty {
			return report.YAML(w, root)
		}
		var buf bytes.Buffer
		if err := report.YAML(&buf, root); err != nil {
			return err
		}
		return report.Highlight(w, buf.String(), "yaml", "")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
