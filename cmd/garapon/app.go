package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/garapon/audio"
	"github.com/lixenwraith/garapon/config"
	"github.com/lixenwraith/garapon/constants"
	"github.com/lixenwraith/garapon/core"
	"github.com/lixenwraith/garapon/engine"
	"github.com/lixenwraith/garapon/game"
	"github.com/lixenwraith/garapon/logging"
	"github.com/lixenwraith/garapon/prize"
	"github.com/lixenwraith/garapon/render"
)

// run loads configuration, opens the terminal and plays until the user quits
func run(o runOptions) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Config{
		Enabled: o.debug,
		Dir:     cfg.Log.Dir,
		Level:   cfg.Log.Level,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	player := audio.NewPlayer(audio.Settings{
		SampleRate: constants.AudioSampleRate,
		Volume:     cfg.Audio.Volume,
		PulseHz:    cfg.Audio.PulseHz,
		Click:      cfg.Audio.Click,
	})
	if cfg.Audio.Enabled && !o.noAudio {
		// Non-fatal, the drum works without sound
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			defer player.Close()
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.RegisterScreen(s)
	defer func() {
		core.RegisterScreen(nil)
		s.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	table, err := cfg.PrizeTable()
	if err != nil {
		return err
	}
	rng := prize.DefaultRNG()
	if o.seeded {
		rng = prize.NewSeededRNG(o.seed)
	}

	logger.Info("session started",
		zap.Bool("audio", player.Supported()),
		zap.Int("prizes", len(table.Prizes())),
		zap.Bool("seeded", o.seeded))

	return loop(s, table, rng, player, logger)
}

// loop owns every piece of game state; timer callbacks and input both run here
func loop(s tcell.Screen, table *prize.Table, rng prize.RandomSource, player *audio.Player, logger *zap.Logger) error {
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()

	clock := engine.NewTimeProvider()
	timers := engine.NewTimerQueue(clock)
	area := render.NewTouchArea(s.Size)

	g := game.New(clock, timers, area, table,
		game.WithLogger(logger),
		game.WithRNG(rng),
		game.WithHaptics(player),
		game.WithClicker(player),
	)
	renderer := render.NewGaraponRenderer(s)

	events := make(chan tcell.Event, constants.EventChannelSize)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := s.PollEvent()
			// Screen finalized
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	renderer.RenderFrame(g.View())
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				s.Sync()
			}
			if !g.HandleEvent(ev) {
				stats := g.Stats()
				logger.Info("session ended",
					zap.Int("spins", stats.Spins),
					zap.Int("completions", stats.Completions),
					zap.Int("prizes", stats.Prizes),
					zap.Int("resets", stats.Resets),
					zap.Int("pending_timers", timers.Len()))
				return nil
			}
		case <-ticker.C:
			timers.Fire()
			renderer.RenderFrame(g.View())
		}
	}
}
