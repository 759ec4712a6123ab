// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/flokiorg/tpinlock/config"
	"github.com/flokiorg/tpinlock/load"
	"github.com/flokiorg/tpinlock/pages"
	"github.com/flokiorg/tpinlock/store"
	"github.com/flokiorg/tpinlock/utils"
)

const (
	splashScreenDelay = time.Second * 1
)

func init() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    tcell.ColorBlack,
		ContrastBackgroundColor:     tcell.ColorGray,
		MoreContrastBackgroundColor: tcell.ColorOrange,
		BorderColor:                 tcell.ColorWhite,
		TitleColor:                  tcell.ColorWhite,
		GraphicsColor:               tcell.ColorWhite,
		PrimaryTextColor:            tcell.ColorWhite,
		SecondaryTextColor:          tcell.ColorWhite,
		TertiaryTextColor:           tcell.ColorGreen,
		InverseTextColor:            tcell.ColorBlue,
		ContrastSecondaryTextColor:  tcell.ColorNavy,
	}
}

type App struct {
	*tview.Application
	pages    *tview.Pages
	cfg      *config.AppConfig
	kv       store.KV
	logger   zerolog.Logger
	loader   *load.Load
	splash   *pages.Splash
	retries  chan struct{}
}

func NewApp(cfg *config.AppConfig, kv store.KV, logger zerolog.Logger) *App {
	app := &App{
		Application: tview.NewApplication(),
		pages:       tview.NewPages(),
		cfg:         cfg,
		kv:          kv,
		logger:      logger,
		retries:     make(chan struct{}, 1),
	}

	app.EnablePaste(false).EnableMouse(true)

	app.splash = pages.NewSplash(app.Application)
	app.pages.AddPage("splashscreen", app.splash, true, true)

	app.SetRoot(app.pages, true).SetFocus(app.pages)
	app.SetInputCapture(app.captureStartupKeys)

	go app.init()

	return app
}

func (app *App) init() {

	time.Sleep(splashScreenDelay)

	app.splash.SetStatus(fmt.Sprintf("Checking %s store...", app.cfg.Store))
	for attempt := 1; ; attempt++ {
		health := load.CheckStoreHealth(context.Background(), app.kv, app.cfg.StoreTimeout)
		if health.Healthy {
			break
		}

		app.logger.Error().Str("store", app.cfg.Store).Int("attempt", attempt).Str("reason", health.Reason).Msg("store unavailable")
		app.splash.SetStatus("Press 'r' to retry. Press Ctrl+C to quit.")
		app.splash.Log(fmt.Sprintf("[red:-:-]Error:[-:-:-] %s", health.Reason))
		if _, ok := <-app.retries; !ok {
			return
		}
		app.splash.SetStatus(fmt.Sprintf("Retrying %s store (attempt %d)...", app.cfg.Store, attempt+1))
	}

	app.splash.SetStatus("Loading settings...")

	s, err := load.ResolveSettings(context.Background(), app.kv)
	if err != nil {
		app.logger.Error().Err(err).Msg("failed to load settings")
		app.splash.SetStatus("Press Ctrl+C to quit.")
		app.splash.Log(fmt.Sprintf("[red:-:-]Error:[-:-:-] %s", utils.FormatBootError(err)))
		return
	}
	app.logger.Info().
		Int("min_length", s.MinLength).
		Int("max_length", s.MaxLength).
		Bool("shuffle", s.ShuffleButtons).
		Msg("settings loaded")

	app.QueueUpdateDraw(func() {
		app.SetInputCapture(nil)
		app.loader = load.NewLoad(app.cfg, app.kv, s, app.Application, app.pages)
		app.loader.Nav.NavigateTo(pages.NewEntrypoint(app.loader))
	})
}

func (app *App) captureStartupKeys(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'r', 'R':
		select {
		case app.retries <- struct{}{}:
		default:
		}
		return nil
	}
	return event
}

// Unlocked reports whether the lock was left open when the app stopped.
func (app *App) Unlocked() bool {
	return app.loader != nil && app.loader.Notif.LastState() == load.StateUnlocked
}

func (app *App) Close() {
	close(app.retries)
	if app.loader != nil {
		app.loader.Notif.Shutdown()
	}
}
