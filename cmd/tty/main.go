// cmd/tty/main.go
package main

import (
	"balloon-popper/internal/app"
	"balloon-popper/internal/audio"
	"balloon-popper/internal/audio/speaker"
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/leaderboard"
	"balloon-popper/internal/state"
	"balloon-popper/pkg/render"
	"balloon-popper/pkg/render/cells"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const tickInterval = time.Second / 60

// errQuit — пользователь закрыл игру (Ctrl-C).
var errQuit = errors.New("quit")

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	defsPath := flag.String("defs", "", "JSON file overriding built-in definitions")
	scoresDir := flag.String("scores", defaultScoresDir(), "directory for the leaderboard file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	mute := flag.Bool("mute", false, "start with sound muted")
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug})))

	lib := defs.DefaultLibrary()
	if *defsPath != "" {
		loaded, err := defs.LoadLibrary(*defsPath)
		if err != nil {
			return fmt.Errorf("load definitions: %w", err)
		}
		lib = loaded
	}

	var listener *audio.Listener
	if player, err := speaker.NewPlayer(); err != nil {
		// Без звука игра идёт как обычно
		slog.Warn("audio initialization failed", "error", err)
	} else {
		defer player.Close()
		listener = audio.NewListener(player)
		listener.SetMuted(*mute)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	game := app.NewGame(lib, *seed, float64(cols)*cells.CellWidth, float64(rows)*cells.CellHeight)
	env := state.NewEnv(game, leaderboard.NewFileStore(*scoresDir), listener)
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	// Чтение ввода блокирует, поэтому живёт в своей горутине. Всё изменение
	// симуляции остаётся в горутине цикла.
	eg.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil // экран закрыт
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer screen.Fini()
		return loop(ctx, screen, sm, events)
	})

	slog.Info("starting", "seed", *seed, "cols", cols, "rows", rows)
	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func loop(ctx context.Context, screen tcell.Screen, sm *state.StateMachine, events <-chan tcell.Event) error {
	cols, rows := screen.Size()
	canvas := cells.NewCanvas(cols, rows)
	frame := render.NewFrame(0, 0, config.BackgroundColor)
	tr := &translator{}
	in := &state.Input{}
	tr.resize(in, canvas, cols, rows)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if err := tr.apply(ev, in, canvas); err != nil {
				return err
			}
		case <-ticker.C:
			sm.Update(in)
			in.Reset()
			sm.Draw(frame)
			canvas.Rasterize(frame)
			canvas.Flush(screen)
			screen.Show()
		}
	}
}

func defaultScoresDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "balloon-popper")
}
