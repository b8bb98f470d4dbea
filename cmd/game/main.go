package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/maxman2025/lane-leaper-runner/internal/game"
	"github.com/maxman2025/lane-leaper-runner/internal/ui"
)

func main() {
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "path to a YAML tuning override file")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = derive from the current time)")
	flag.Parse()

	cfg := game.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = game.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := game.NewSession(cfg,
		game.WithSeed(seed),
		game.WithHighScoreHook(func(score int) {
			log.Printf("new high score: %d", score)
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("seed %d (pass -seed to replay this run)", session.Seed())

	app := ui.New(session)
	ebiten.SetWindowTitle("Lane Leaper")
	ebiten.SetWindowSize(app.Width(), app.Height())
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
