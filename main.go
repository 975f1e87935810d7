package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/llehouerou/deskboard/internal/app"
	"github.com/llehouerou/deskboard/internal/config"
	"github.com/llehouerou/deskboard/internal/errmsg"
	"github.com/llehouerou/deskboard/internal/icons"
	"github.com/llehouerou/deskboard/internal/logging"
	"github.com/llehouerou/deskboard/internal/state"
	"github.com/llehouerou/deskboard/internal/ui/host"
	"github.com/llehouerou/deskboard/internal/ui/styles"
)

func main() {
	os.Exit(run())
}

// run starts the dashboard and returns the process exit code. Resources are
// released by defers before it returns.
func run() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "deskboard needs an interactive terminal")
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(errmsg.OpConfigLoad, err)
	}

	logger, logFile, err := logging.New(config.LogConfig{File: cfg.Log.File, Level: cfg.LogLevel()})
	if err != nil {
		return fail(errmsg.OpLogOpen, err)
	}
	defer logFile.Close()

	stateMgr, err := state.Open()
	if err != nil {
		return fail(errmsg.OpStateOpen, err)
	}
	defer stateMgr.Close()

	precision, err := host.ParseModifier(cfg.PrecisionModifier())
	if err != nil {
		precision = host.ModAlt
	}
	iconStyle := cfg.Icons
	if iconStyle == "" {
		iconStyle = config.DefaultIcons
	}

	zones := host.NewZones()
	defer zones.Close()

	h := host.New(
		host.WithZones(zones),
		host.WithLogger(logger),
		host.WithTheme(styles.Dark()),
		host.WithIcons(icons.For(iconStyle)),
		host.WithPrecisionModifier(precision),
		host.WithFrameInterval(cfg.GetOverlay().FrameInterval),
	)

	m := app.New(app.Options{
		Config: cfg,
		State:  stateMgr,
		Host:   h,
	})

	logger.Info("starting", "page", m.Route())
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fail(errmsg.OpInitialize, err)
	}
	return 0
}

func fail(op errmsg.Op, err error) int {
	fmt.Fprintln(os.Stderr, errmsg.Format(op, err))
	return 1
}
