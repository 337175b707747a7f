package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/catalog"
	"modwall/internal/config"
	"modwall/internal/configurator"
	"modwall/internal/delivery"
	"modwall/internal/domain"
	"modwall/internal/eventbus"
	"modwall/internal/ui"
)

func main() {
	var (
		configPath  string
		catalogPath string
		printGraph  bool
		flushOutbox bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the configuration file")
	flag.StringVar(&configPath, "c", "", "Path to the configuration file (shorthand)")
	flag.StringVar(&catalogPath, "catalog", "", "Path to a YAML catalog (overrides catalog_path)")
	flag.BoolVar(&printGraph, "graph", false, "Print the stage machine in graphviz dot format and exit")
	flag.BoolVar(&flushOutbox, "flush-outbox", false, "Send submissions queued in the outbox to the configured endpoint and exit")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := loadConfig(configSvc, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	provider, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	session := configurator.New(catalog.NewProjection(provider),
		configurator.WithBrand(cfg.Brand),
		configurator.WithStageListener(func(from, to domain.Stage) {
			bus.Publish(eventbus.StageChangedEvent{From: from, To: to})
		}),
	)

	if printGraph {
		fmt.Println(session.Graph())
		return
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if flushOutbox {
		sent, err := flush(ctx, cfg.Delivery)
		if err != nil {
			fmt.Printf("Error flushing outbox: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Sent %d queued submission(s)\n", sent)
		return
	}

	deliverer, err := delivery.New(cfg.Delivery)
	if err != nil {
		fmt.Printf("Error setting up delivery: %v\n", err)
		os.Exit(1)
	}
	deliverySvc := delivery.NewService(bus, deliverer, delivery.Timeout(cfg.Delivery))
	defer deliverySvc.Close()

	bus.Subscribe(eventbus.EventStageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.StageChangedEvent); ok {
			log.Printf("Stage changed: %s -> %s", event.From, event.To)
		}
	})

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg, session)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward delivery outcomes and errors to the UI
	for _, eventType := range []eventbus.EventType{eventbus.EventSubmissionCompleted, eventbus.EventError} {
		bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if os.Getenv("MODWALL_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadConfig loads the config from path, or from the user config directory
func loadConfig(configSvc config.ConfigService, path string) (*config.Config, error) {
	if path != "" {
		return configSvc.LoadFromPath(path)
	}
	return configSvc.Load()
}

// loadCatalog reads the YAML catalog at path, or returns the built-in one
func loadCatalog(path string) (catalog.Provider, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded catalog from %s", path)
	return cat, nil
}

// flush delivers every pending outbox entry to the HTTP endpoint
func flush(ctx context.Context, cfg config.DeliveryConfig) (int, error) {
	if cfg.Endpoint == "" {
		return 0, fmt.Errorf("no delivery endpoint configured")
	}
	outbox, err := delivery.OpenOutbox(cfg.OutboxPath)
	if err != nil {
		return 0, err
	}
	defer outbox.Close()

	remote := delivery.NewHTTPDeliverer(cfg.Endpoint, delivery.Timeout(cfg))
	defer remote.Close()

	return outbox.Drain(ctx, remote)
}
