package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tremolo/internal/app"
	"tremolo/internal/config"
	"tremolo/internal/errmsg"
	"tremolo/internal/notify"
	"tremolo/internal/panel"
	"tremolo/internal/picker"
	"tremolo/internal/player"
	"tremolo/internal/session"
	"tremolo/internal/state"
	"tremolo/internal/stderr"
	"tremolo/internal/tags"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: tremolo <file|directory>")
		os.Exit(1)
	}
	target := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fatal(errmsg.Format(errmsg.OpLoadConfig, err))
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	info, err := os.Stat(target)
	if err != nil {
		fatal(errmsg.FormatWith(errmsg.OpStatTarget, target, err))
	}
	if info.IsDir() {
		target, err = picker.RandomTrack(rng, target)
		if err != nil {
			fatal(errmsg.Format(errmsg.OpPickTrack, err))
		}
	}

	// Missing persistence is not fatal; playback just starts at full
	// volume every run.
	store, err := state.Open()
	if err != nil {
		store = nil
	}

	// ALSA writes warnings straight to fd 2, which would land in the
	// middle of the panel once the speaker is up.
	_ = stderr.Start()

	eng := player.New()
	if store != nil {
		if level, err := store.GetVolume(); err == nil {
			eng.SetVolume(level)
		}
	}

	if err := eng.Play(target); err != nil {
		stderr.Stop()
		if store != nil {
			store.Close()
		}
		fatal(errmsg.FormatWith(errmsg.OpPlayTrack, target, err))
	}

	pnl := panel.New(tags.Title(target), cfg.BoxWidth)
	co := session.New(eng, pnl, rng, cfg.BoxWidth, target)

	notifier, err := notify.New()
	if err != nil {
		notifier = nil
	}

	m := app.New(co, cfg, store, notifier, eng.Events())

	// The alt screen restores the cursor and primary screen on every exit
	// path, including SIGINT/SIGTERM caught by the program loop.
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()

	co.Stop()
	stderr.Stop()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal(errmsg.Format(errmsg.OpRunUI, runErr))
	}
}

func fatal(msg string) {
	stderr.WriteOriginal(msg + "\n")
	os.Exit(1)
}
