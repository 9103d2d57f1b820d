package commands

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"noticeboard/internal/config"
	"noticeboard/internal/eventbus"
	"noticeboard/internal/logging"
	"noticeboard/internal/notices"
	"noticeboard/internal/pagination"
	"noticeboard/internal/ui"
)

func runBoard(cmd *cobra.Command, s *settings, args []string) error {
	cfgSvc := configService(s, nil)
	cfg, err := cfgSvc.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, s, cfg); err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Category = args[0]
	}

	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.Log.Level),
		Pretty: cfg.Log.Pretty,
		Output: logFile,
	})

	bus := eventbus.New(logging.NewLogger("eventbus"))
	defer bus.Close()
	subscribeLogging(bus, logging.NewLogger("events"))

	bus.Publish(eventbus.ConfigLoadedEvent{Path: cfgSvc.Path(), Category: cfg.Category})

	src, err := notices.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	if cfg.Category != "" && !src.HasCategory(cfg.Category) {
		return fmt.Errorf("unknown category %q (run 'noticeboard categories' to list them)", cfg.Category)
	}

	ctrl := pagination.New(src, cfg.Category, pagination.Options{
		PageSize:            cfg.Pagination.PageSize,
		LoadDelay:           cfg.Pagination.Delay(),
		CancelOnQueryChange: cfg.Pagination.CancelOnQueryChange,
	}, bus)
	defer ctrl.Close()

	model := ui.NewModel(ctrl, bus, ui.Options{
		ShowToast:           cfg.Toast.Enabled,
		ToastDuration:       cfg.Toast.Length(),
		EndReachedThreshold: cfg.Pagination.EndReachedThreshold,
	})

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	logger.Info().Str("category", cfg.Category).Int("notices", src.Len()).Msg("starting")

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}

	logger.Info().Msg("exiting")
	return nil
}

func configService(s *settings, bus eventbus.EventBus) config.ConfigService {
	if s.configPath != "" {
		return config.NewConfigServiceAt(s.configPath, bus)
	}
	if bus != nil {
		return config.NewConfigServiceWithBus(bus)
	}
	return config.NewConfigService()
}

// applyFlags overrides cfg with the flags that were set explicitly
func applyFlags(cmd *cobra.Command, s *settings, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("data") {
		cfg.DataFile = s.dataFile
	}
	if flags.Changed("page-size") {
		cfg.Pagination.PageSize = s.pageSize
	}
	if flags.Changed("delay") {
		cfg.Pagination.LoadDelay = s.delay
	}
	if flags.Changed("no-toast") {
		cfg.Toast.Enabled = !s.noToast
	}
	if flags.Changed("keep-loading-on-search") {
		cfg.Pagination.CancelOnQueryChange = !s.keepLoading
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = s.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = s.logFile
	}
	if flags.Changed("log-pretty") {
		cfg.Log.Pretty = s.logPretty
	}

	return config.Validate(cfg)
}

// subscribeLogging records every notice event in the log file
func subscribeLogging(bus eventbus.EventBus, logger zerolog.Logger) {
	debug := func(e eventbus.DomainEvent) {
		logger.Debug().Str("event", string(e.Type())).Interface("data", e).Msg("event")
	}

	for _, t := range []eventbus.EventType{
		eventbus.EventNoticesLoaded,
		eventbus.EventQueryChanged,
		eventbus.EventLoadMoreStarted,
		eventbus.EventPageLoaded,
		eventbus.EventLoadMoreCancelled,
		eventbus.EventNoticeOpened,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, debug)
	}

	bus.Subscribe(eventbus.EventLoadMoreFailed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.LoadMoreFailedEvent); ok {
			logger.Warn().Err(ev.Err).Int("page", ev.Page).Msg("load more failed")
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			logger.Error().Err(ev.Err).Msg(ev.Message)
		}
	})
}
