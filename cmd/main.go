package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"officesim/internal/core/game"
	"officesim/internal/core/model"
	"officesim/internal/core/office"
	"officesim/internal/core/qte"
	"officesim/internal/platform"
	"officesim/internal/storage"
	"officesim/internal/ui/dashboard"
	"officesim/internal/ui/overlay"
	"officesim/internal/ui/preferences"
	"officesim/internal/ui/tray"
)

const (
	appName = "OfficeSim"
	appID   = "com.officesim.app"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
	logger := newLogger(getEnvDefault("OFFICESIM_LOG_LEVEL", "info"))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	catalog, err := storage.LoadCatalog(appName)
	if err != nil {
		log.Printf("load event catalog: %v", err)
	}
	seed, err := strconv.ParseInt(getEnvDefault("OFFICESIM_SEED", "0"), 10, 64)
	if err != nil {
		log.Printf("OFFICESIM_SEED: %v", err)
		seed = 0
	}

	current, err := newGame(simulationConfig(settings, seed), catalog)
	if err != nil {
		log.Printf("create game: %v", err)
		return
	}
	runner := game.NewRunner(current, game.Options{
		ProgressInterval: 100 * time.Millisecond,
		Logger:           logger,
	})

	if ticks, _ := strconv.Atoi(getEnvDefault("OFFICESIM_HEADLESS_TICKS", "0")); ticks > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		snapshot, err := runHeadless(ctx, runner, ticks, logger)
		if err != nil {
			log.Printf("headless run: %v", err)
			return
		}
		logger.Info("headless run finished",
			"tick", snapshot.Tick,
			"money", snapshot.Money,
			"employees", len(snapshot.Employees),
			"game", snapshot.GameState.String(),
		)
		return
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	runGUI(runner, settings, seed, catalog, logger)
}

func runGUI(runner *game.Runner, settings preferences.Settings, seed int64, catalog []qte.Template, logger *slog.Logger) {
	runner.SetIdleChecker(platform.NewIdleProvider())

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.ComputerIcon())

	board := dashboard.New(fyneApp, runner)
	board.SetOnError(func(err error) {
		logger.Error("dashboard command failed", "err", err)
	})

	eventWindow := overlay.New(fyneApp, overlay.Config{Opacity: settings.EventAlpha()})
	eventWindow.SetOnChoose(func(choice qte.Choice) {
		runner.Do(func(current *game.Game) { current.Choose(choice) })
		snapshot := runner.Snapshot()
		eventWindow.Update(snapshot.QTE)
		board.Refresh(snapshot)
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
		eventWindow.UpdateConfig(overlay.Config{Opacity: updated.EventAlpha()})
		current, err := newGame(simulationConfig(updated, seed), catalog)
		if err != nil {
			log.Printf("create game: %v", err)
			return
		}
		runner.Replace(current)
		board.Refresh(runner.Snapshot())
	})

	togglePause := func() {
		if runner.Paused() {
			runner.Resume()
		} else {
			runner.Pause()
		}
		board.Refresh(runner.Snapshot())
	}

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowOffice:  board.Show,
			OnPreferences: prefsWindow.Show,
			OnTogglePause: togglePause,
			OnNewGame: func() {
				if err := runner.Restart(); err != nil {
					log.Printf("restart: %v", err)
				}
				board.Refresh(runner.Snapshot())
			},
			OnQuit: fyneApp.Quit,
		})
		board.Window().SetCloseIntercept(func() {
			board.Window().Hide()
		})
	} else {
		log.Printf("system tray unsupported on this platform")
		board.Window().SetMaster()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := runner.Subscribe(32)
	go func() {
		for event := range events {
			if event.Type == game.EventIdleError {
				logger.Debug("idle detection", "message", event.Message)
			}
			snapshot := runner.Snapshot()
			board.RefreshAsync(snapshot)
			eventWindow.UpdateAsync(snapshot.QTE)
			if trayManager != nil {
				fyne.Do(func() {
					trayManager.SetPaused(snapshot.Paused)
					trayManager.SetGameOver(snapshot.GameState == office.GameOver)
					trayManager.SetStatus(statusLine(snapshot))
				})
			}
		}
	}()

	if err := runner.Start(ctx); err != nil {
		log.Printf("start runner: %v", err)
		return
	}

	board.Show()
	fyneApp.Run()

	if err := runner.Stop(); err != nil && !errors.Is(err, game.ErrNotRunning) {
		log.Printf("stop runner: %v", err)
	}
}

// runHeadless advances the game ticks times without a window and logs
// every runner event.
func runHeadless(ctx context.Context, runner *game.Runner, ticks int, logger *slog.Logger) (game.Snapshot, error) {
	events := runner.Subscribe(64)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return runner.RunTicks(groupCtx, ticks)
	})
	group.Go(func() error {
		for event := range events {
			logEvent(logger, event)
		}
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return runner.Snapshot(), err
	}
	return runner.Snapshot(), nil
}

func logEvent(logger *slog.Logger, event game.Event) {
	level := slog.LevelInfo
	if event.Type == game.EventProgress {
		level = slog.LevelDebug
	}
	logger.Log(context.Background(), level, "runner event",
		"type", string(event.Type),
		"state", string(event.State),
		"tick", event.Tick,
		"money", event.Money,
		"message", event.Message,
	)
}

func newGame(config model.SimulationConfig, catalog []qte.Template) (*game.Game, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return game.New(config, catalog, rand.New(rand.NewSource(seed)))
}

// simulationConfig applies the environment seed over the saved one.
func simulationConfig(settings preferences.Settings, seed int64) model.SimulationConfig {
	config := settings.SimulationConfig()
	if seed != 0 {
		config.Seed = seed
	}
	return config
}

func statusLine(snapshot game.Snapshot) string {
	return fmt.Sprintf("%.0f money, %d employees", snapshot.Money, len(snapshot.Employees))
}

func newLogger(level string) *slog.Logger {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		parsed = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parsed}))
}

func getEnvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
