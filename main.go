package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/minihome/internal/app"
	"github.com/llehouerou/minihome/internal/config"
	"github.com/llehouerou/minihome/internal/errmsg"
	"github.com/llehouerou/minihome/internal/icons"
	"github.com/llehouerou/minihome/internal/logging"
	"github.com/llehouerou/minihome/internal/mpris"
	"github.com/llehouerou/minihome/internal/notify"
	"github.com/llehouerou/minihome/internal/player"
	"github.com/llehouerou/minihome/internal/playlist"
	"github.com/llehouerou/minihome/internal/state"
	"github.com/llehouerou/minihome/internal/stderr"
)

var (
	cli        = kingpin.New("minihome", "A personal minihome in the terminal, with BGM.")
	configPath = cli.Flag("config", "Config file (default: XDG config dir, then ./config.toml)").Short('c').String()
	verbose    = cli.Flag("verbose", "Log at debug level").Short('v').Bool()
	noMPRIS    = cli.Flag("no-mpris", "Do not register media keys over D-Bus").Bool()
	dbPath     = cli.Flag("db", "Homepage database path (default: XDG data dir)").String()
	logPath    = cli.Flag("log", "Log file path (default: XDG state dir)").String()
)

func main() {
	kingpin.MustParse(cli.Parse(os.Args[1:]))

	if err := run(); err != nil {
		stderr.WriteOriginal("minihome: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	icons.Init(cfg.Icons)

	level, err := logging.ParseLevel(cfg.LogLevel, *verbose)
	if err != nil {
		return err
	}
	log, logFile, err := logging.Open(*logPath, level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Audio backends write diagnostics to fd 2, which would corrupt the TUI.
	if err := stderr.Start(log); err != nil {
		log.WithError(err).Warn("stderr capture unavailable")
	}
	defer stderr.Stop()

	store, err := state.Open(*dbPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer store.Close()

	engine := player.NewSpeaker(cfg.AudioRoot, cfg.TickInterval(), log)
	defer engine.Close()

	var adapter *mpris.Adapter
	if cfg.MPRISEnabled() && !*noMPRIS {
		adapter = mpris.New(log)
	}

	deps := app.Deps{
		Config:  cfg,
		State:   store,
		Engine:  engine,
		Catalog: playlist.Default(),
		Log:     log,
	}
	if adapter != nil {
		deps.Publisher = adapter
	}
	if cfg.NotificationsEnabled() {
		notifier, err := notify.New()
		if err != nil {
			log.WithError(err).Warn("desktop notifications unavailable")
		} else {
			deps.Notifier = notifier
		}
	}

	log.WithFields(logrus.Fields{
		"owner":      cfg.Owner,
		"audio_root": cfg.AudioRoot,
		"mpris":      adapter != nil,
	}).Info("starting")

	p := tea.NewProgram(app.New(deps), tea.WithAltScreen())
	if adapter != nil {
		adapter.Start(p)
		defer adapter.Close()
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if m, ok := final.(app.Model); ok {
		m.DismissNowPlaying()
	}
	log.Info("bye")
	return nil
}
