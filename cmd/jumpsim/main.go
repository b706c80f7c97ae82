package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	cfg "github.com/automoto/jumpcore/config"
	"github.com/automoto/jumpcore/sim"
	"github.com/automoto/jumpcore/systems"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	levelPath := flag.String("level", "", "TMX level to simulate (required)")
	configPath := flag.String("config", "", "Config file (yaml, toml or json)")
	ticks := flag.Int("ticks", -1, "Ticks to run (default from config, 0 = until interrupted in realtime mode)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second in realtime mode (default from config)")
	realtime := flag.Bool("realtime", false, "Run at the tick rate instead of as fast as possible")
	save := flag.String("save", "", "Save the final snapshot under this name")
	compare := flag.String("compare", "", "Compare the final snapshot with the one saved under this name")
	tolerance := flag.Float64("tolerance", 1e-9, "Position and speed tolerance for -compare")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	if *levelPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	// A missing .env is fine.
	_ = godotenv.Load()

	if err := cfg.Load(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *ticks >= 0 {
		cfg.Sim.Ticks = *ticks
	}
	if *tickRate > 0 {
		cfg.Sim.TickRate = *tickRate
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	dir, file := filepath.Split(*levelPath)
	if dir == "" {
		dir = "."
	}
	s, err := sim.Load(os.DirFS(dir), file)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	loop := sim.NewLoop(s, cfg.Sim.TickRate)
	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := loop.Run(ctx, cfg.Sim.Ticks)
		stop()
		if err != nil {
			log.Info("Interrupted, reporting state so far")
		}
	} else {
		loop.RunTicks(cfg.Sim.Ticks)
	}

	snap := s.Snapshot()
	report(snap)

	if *save != "" {
		if err := systems.SaveSnapshot(*save, snap); err != nil {
			log.Fatalf("Failed to save snapshot: %v", err)
		}
	}
	if *compare != "" {
		if !compareSnapshot(*compare, snap, *tolerance) {
			closeLog()
			os.Exit(1)
		}
	}
}

func report(snap *systems.Snapshot) {
	log.WithFields(log.Fields{
		"level":  snap.Level,
		"steps":  snap.Step,
		"bodies": len(snap.Bodies),
	}).Info("Simulation finished")

	for _, b := range snap.Bodies {
		log.WithFields(log.Fields{
			"id":       b.ID,
			"desc":     b.Desc,
			"x":        b.X,
			"y":        b.Y,
			"speedX":   b.SpeedX,
			"speedY":   b.SpeedY,
			"onGround": b.OnGround,
		}).Info("Body")
	}
}

func compareSnapshot(name string, got *systems.Snapshot, tolerance float64) bool {
	want, err := systems.LoadSnapshot(name)
	if err != nil {
		log.Errorf("Failed to load snapshot: %v", err)
		return false
	}
	diff := systems.Diff(want, got, tolerance)
	for _, d := range diff {
		log.WithField("snapshot", name).Warn(d)
	}
	if len(diff) > 0 {
		log.WithFields(log.Fields{"snapshot": name, "differences": len(diff)}).Error("Run does not match snapshot")
		return false
	}
	log.WithField("snapshot", name).Info("Run matches snapshot")
	return true
}
