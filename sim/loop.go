package sim

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Loop drives a simulation at a fixed tick rate.
type Loop struct {
	sim      *Simulation
	tickRate int

	// OnTick, if set, runs after every tick.
	OnTick func(s *Simulation)
}

func NewLoop(sim *Simulation, tickRate int) *Loop {
	return &Loop{
		sim:      sim,
		tickRate: max(tickRate, 1),
	}
}

// RunTicks runs n ticks back to back, as fast as possible.
func (l *Loop) RunTicks(n int) {
	for i := 0; i < n; i++ {
		l.tick()
	}
}

// Run ticks in real time until n ticks have run or ctx is done. n <= 0 runs
// until ctx is done. It returns ctx.Err() when stopped early.
func (l *Loop) Run(ctx context.Context, n int) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.WithField("tickRate", l.tickRate).Info("Loop started")

	for ran := 0; n <= 0 || ran < n; ran++ {
		select {
		case <-ctx.Done():
			log.WithField("ticks", l.sim.Ticks()).Info("Loop stopped")
			return ctx.Err()
		case <-ticker.C:
			l.tick()
		}
	}

	log.WithField("ticks", l.sim.Ticks()).Info("Loop finished")
	return nil
}

func (l *Loop) tick() {
	l.sim.Tick()
	if l.OnTick != nil {
		l.OnTick(l.sim)
	}
}
