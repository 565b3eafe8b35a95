package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/davidmaxon/sashpane/pkg/config"
	"github.com/davidmaxon/sashpane/pkg/ui"
	"github.com/davidmaxon/sashpane/pkg/watcher"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Panel config YAML file (watched for changes)")
	flag.Parse()

	if *help {
		fmt.Println("Usage: sp [options]")
		fmt.Println("\nA draggable split-pane demo. Resize with the mouse,")
		fmt.Println("double-click the divider to reset.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("sp version 0.1.0")
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("sp needs an interactive terminal.")
		os.Exit(1)
	}

	// Terminal cells, not the library's pixel-scale defaults.
	cfg := config.Panel{ID: "demo", Width: 40, MinWidth: 20, MaxWidth: 80}
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	m := ui.NewPanel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if *configPath != "" {
		w, err := watcher.New(*configPath, 0, func() {
			reloaded, err := config.Load(*configPath)
			if err != nil {
				// Keep the last good config while the file is mid-edit.
				return
			}
			p.Send(ui.ConfigReloadedMsg{Cfg: reloaded})
		}, nil)
		if err != nil {
			fmt.Printf("Error watching config: %v\n", err)
			os.Exit(1)
		}
		g.Go(func() error {
			defer w.Close()
			return w.Run(ctx)
		})
	}

	g.Go(func() error {
		// Cancelling here is the teardown hook that tears the watcher
		// down with the UI, whichever way the program exits.
		defer cancel()
		_, err := p.Run()
		return err
	})

	if err := g.Wait(); err != nil {
		fmt.Printf("Error running sashpane: %v\n", err)
		os.Exit(1)
	}
}
