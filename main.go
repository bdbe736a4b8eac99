package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/decoded/internal/ambient"
	"github.com/llehouerou/decoded/internal/app"
	"github.com/llehouerou/decoded/internal/catalog"
	"github.com/llehouerou/decoded/internal/config"
	"github.com/llehouerou/decoded/internal/errmsg"
	"github.com/llehouerou/decoded/internal/logging"
	"github.com/llehouerou/decoded/internal/media"
	"github.com/llehouerou/decoded/internal/mpris"
	"github.com/llehouerou/decoded/internal/notify"
	"github.com/llehouerou/decoded/internal/session"
	"github.com/llehouerou/decoded/internal/state"
	"github.com/llehouerou/decoded/internal/stderr"
	"github.com/llehouerou/decoded/internal/theme"
	"github.com/llehouerou/decoded/internal/ui/styles"
)

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("Error: %v\n", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	logCfg := cfg.GetLogConfig()
	logger, logFile, err := logging.New(logging.Options{
		Level:  logCfg.Level,
		Format: logCfg.Format,
		Path:   logCfg.Path,
	})
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Capture stderr before the audio device is opened.
	if err := stderr.Start(logger); err != nil {
		logger.Warn("stderr capture unavailable", slog.Any("error", err))
	}
	defer stderr.Stop()

	stateMgr, err := state.Open()
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	machine, err := theme.New(stateMgr, logger)
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpThemeLoad, err))
	}

	resolver := media.NewResolver(cfg.MediaRoot, logger)

	cat := catalog.Default()
	if cfg.Catalog != "" {
		loaded, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpCatalogLoad, cfg.Catalog, err))
		}
		cat = loaded
	}
	if cfg.EnrichEnabled() {
		cat = catalog.Enrich(cat, resolver.LocalPath)
	}
	logger.Info("catalog ready",
		slog.Int("episodes", cat.Len()),
		slog.Float64("total_seconds", cat.TotalDuration()))

	binding := media.NewSpeaker(resolver, logger)
	defer binding.Close()

	ctrl := session.New(cat, binding, logger)
	defer ctrl.Close()

	// Background goroutines finish before the services they use are closed.
	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mixer := newMixer(ctx, cfg, resolver, machine.Theme(), logger)
	defer mixer.Close()

	styles.Apply(machine.Theme())
	machine.OnSwap(styles.Apply)
	machine.OnSwap(mixer.SetTheme)

	cover := func(ep catalog.Episode) string {
		return resolver.CoverPath(ep.CoverArt, ep.AudioSrc)
	}

	if cfg.NotificationsEnabled() {
		n, err := notify.New()
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpNotify, err))
		} else {
			announcer := notify.NewAnnouncer(n, cover, logger)
			sub := ctrl.Subscribe()
			wg.Go(func() { announcer.Run(ctx, sub) })
		}
	}

	m := app.New(app.Deps{
		Session:     ctrl,
		Binding:     binding,
		Theme:       machine,
		Ambient:     mixer,
		Logger:      logger,
		SkipSeconds: cfg.SkipStep(),
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	if cfg.MPRISEnabled() {
		send := func(c session.Command) { p.Send(app.CommandMsg(c)) }
		adapter, err := mpris.New(ctrl, cat.Len(), send, cover)
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpMPRIS, err))
		} else {
			defer adapter.Close()
		}
	}

	_, err = p.Run()
	return err
}

// newMixer loads the two ambient loops. A loop that fails to load is
// replaced by silence.
func newMixer(ctx context.Context, cfg *config.Config, r *media.Resolver, t theme.Theme, logger *slog.Logger) *ambient.Mixer {
	amb := cfg.GetAmbientConfig()
	level := cfg.AmbientVolume()

	load := func(src string) ambient.Track {
		track, err := ambient.NewLoop(ctx, r, src, level)
		if err != nil {
			logger.Warn(errmsg.FormatWith(errmsg.OpAmbientLoad, src, err))
			return ambient.Silent{}
		}
		return track
	}

	return ambient.New(load(amb.Light), load(amb.Dark), t, amb.Muted)
}
