// cmd/game/main.go
package main

import (
	"balloon-popper/internal/app"
	"balloon-popper/internal/audio"
	"balloon-popper/internal/audio/playback"
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/leaderboard"
	"balloon-popper/internal/state"
	"balloon-popper/pkg/render"
	"balloon-popper/pkg/render/raster"
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppGame адаптирует машину состояний к интерфейсу ebiten.Game.
type AppGame struct {
	stateMachine *state.StateMachine
	renderer     *raster.Renderer
	frame        *render.Frame
	input        state.Input
}

func (a *AppGame) Update() error {
	pollInput(&a.input)
	a.stateMachine.Update(&a.input)
	a.input.Reset()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(a.frame)
	a.renderer.Draw(screen, a.frame)
}

// Layout отдаёт логический размер равным размеру окна: игра сама
// подстраивается под вьюпорт.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.input.Width, a.input.Height = float64(outsideWidth), float64(outsideHeight)
	return outsideWidth, outsideHeight
}

func defaultScoresDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "balloon-popper")
}

func main() {
	defsPath := flag.String("defs", "", "JSON file overriding built-in definitions")
	scoresDir := flag.String("scores", defaultScoresDir(), "directory for the leaderboard file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	mute := flag.Bool("mute", false, "start with sound muted")
	pprofAddr := flag.String("pprof", "", "address for the pprof server, e.g. localhost:6060")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *pprofAddr != "" {
		go func() {
			slog.Error("pprof server stopped", "error", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	lib := defs.DefaultLibrary()
	if *defsPath != "" {
		loaded, err := defs.LoadLibrary(*defsPath)
		if err != nil {
			slog.Error("failed to load definitions", "path", *defsPath, "error", err)
			os.Exit(1)
		}
		lib = loaded
		slog.Info("definitions loaded", "path", *defsPath)
	}

	store := leaderboard.NewFileStore(*scoresDir)
	slog.Info("leaderboard", "path", store.Path())

	listener := audio.NewListener(playback.NewPlayer(0.6))
	listener.SetMuted(*mute)

	game := app.NewGame(lib, *seed, config.ScreenWidth, config.ScreenHeight)
	env := state.NewEnv(game, store, listener)
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, env))

	appGame := &AppGame{
		stateMachine: sm,
		renderer:     raster.NewRenderer(),
		frame:        render.NewFrame(config.ScreenWidth, config.ScreenHeight, config.BackgroundColor),
		input:        state.Input{Width: config.ScreenWidth, Height: config.ScreenHeight},
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	slog.Info("starting", "seed", *seed)
	if err := ebiten.RunGame(appGame); err != nil {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
