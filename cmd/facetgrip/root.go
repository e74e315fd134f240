package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"facetgrip/internal/config"
	"facetgrip/internal/eventbus"
	"facetgrip/internal/search"
	"facetgrip/internal/ui"
)

var (
	configPath  string
	catalogPath string
	logPath     string
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "facetgrip",
		Short: "Browse a product catalog with faceted search",
		Long: `facetgrip is a terminal product search with refinement panels.

Wide terminals show the panels in a sidebar; narrow ones open them in a
"Filter & Sort" drawer, one panel at a time. Results load page by page as
you scroll, a couple of pages automatically and the rest on request.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	root.Flags().StringVar(&catalogPath, "catalog", "", "product catalog TOML (default: built-in sample)")
	root.Flags().StringVar(&logPath, "log", "facetgrip.log", "log file")

	root.AddCommand(initCmd())
	return root
}

func run() error {
	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	configSvc := config.NewConfigServiceAt(configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	bus := eventbus.New()
	defer bus.Close()

	uiModel := ui.NewModel(ctx, bus, cfg, catalog)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	forwardEvents(ctx, bus, p.Send)

	if _, statErr := os.Stat(configSvc.Path()); statErr == nil {
		watcher, err := config.NewWatcher(configSvc.Path(), func(c *config.Config) {
			p.Send(ui.ConfigReloadedMsg{Config: c})
		}, config.WithBus(bus))
		if err != nil {
			log.Printf("Config watching disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if os.Getenv("FACETGRIP_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

func loadCatalog(cfg *config.Config) (*search.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = cfg.Search.Catalog
	}

	catalog := search.SampleCatalog()
	if path != "" {
		c, err := search.LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		catalog = c
	}
	if cfg.Search.LatencyMS > 0 {
		catalog = catalog.WithLatency(time.Duration(cfg.Search.LatencyMS) * time.Millisecond)
	}
	log.Printf("Catalog: %d products in %v", len(catalog.Products), catalog.Categories())
	return catalog, nil
}

// forwardEvents logs every domain event and hands the ones the UI reacts
// to send until ctx ends. The returned channel closes when forwarding stops.
func forwardEvents(ctx context.Context, bus eventbus.EventBus, send func(tea.Msg)) <-chan struct{} {
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}

	for _, t := range []eventbus.EventType{
		eventbus.EventSearchStarted,
		eventbus.EventResultsUpdated,
		eventbus.EventSearchFailed,
		eventbus.EventPageRequested,
		eventbus.EventPanelsInitialized,
		eventbus.EventViewportChanged,
		eventbus.EventConfigReloaded,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Printf("Event %s: %+v", e.Type(), e)
		})
	}
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventConfigReloaded, forward)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-eventChan:
				send(ui.EventMsg{Event: event})
			}
		}
	}()
	return done
}
