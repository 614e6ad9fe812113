package candidate

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	sweepGrace = 2 * time.Minute
	sweepBatch = 100
)

// Sweeper периодически дожимает кандидатов, застрявших в uploaded/parsed
// (например, провайдер эмбеддингов был недоступен).
type Sweeper struct {
	uc   UseCase
	cron *cron.Cron
	log  *zap.Logger
	ctx  context.Context
	stop context.CancelFunc
}

// NewSweeper schedules the sweep with a standard 5-field cron spec.
func NewSweeper(uc UseCase, schedule string, log *zap.Logger) (*Sweeper, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Sweeper{uc: uc, cron: cron.New(), log: log, ctx: ctx, stop: cancel}
	if _, err := s.cron.AddFunc(schedule, s.Sweep); err != nil {
		cancel()
		return nil, err
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
	s.log.Info("candidate sweeper started")
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	s.stop()
	<-s.cron.Stop().Done()
}

func (s *Sweeper) Sweep() {
	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Minute)
	defer cancel()
	n, err := s.uc.ProcessStale(ctx, sweepGrace, sweepBatch)
	if err != nil {
		s.log.Warn("candidate sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.log.Info("candidate sweep finished", zap.Int("ready", n))
	}
}
