package monitoring

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/inkwell/inkwell-be/internal/services"
)

// SessionSweeper periodically removes expired session rows. Expired
// sessions are already invisible to lookups; the sweep keeps the table
// from growing without bound.
type SessionSweeper struct {
	sessions services.SessionServiceProvider
	schedule cron.Schedule
	ticker   *time.Ticker
	done     chan bool
	nextRun  time.Time
}

// NewSessionSweeper creates a sweeper that purges on the given standard
// cron schedule.
func NewSessionSweeper(sessions services.SessionServiceProvider, cronExpr string) (*SessionSweeper, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, err
	}
	return &SessionSweeper{
		sessions: sessions,
		schedule: schedule,
		done:     make(chan bool),
	}, nil
}

// Run starts the sweeper's ticking loop.
func (s *SessionSweeper) Run() {
	log.Info().Msg("Starting session sweeper")
	s.ticker = time.NewTicker(1 * time.Minute)
	defer s.ticker.Stop()

	// Run once immediately on start
	s.sweep()
	s.nextRun = s.schedule.Next(time.Now())

	for {
		select {
		case <-s.done:
			log.Info().Msg("Stopping session sweeper")
			return
		case now := <-s.ticker.C:
			if now.After(s.nextRun) {
				s.sweep()
				s.nextRun = s.schedule.Next(now)
			}
		}
	}
}

// Stop halts the sweeper.
func (s *SessionSweeper) Stop() {
	s.done <- true
}

// sweep purges expired sessions and logs the result.
func (s *SessionSweeper) sweep() {
	purged, err := s.sessions.PurgeExpired()
	if err != nil {
		log.Error().Err(err).Msg("Session sweep failed")
		return
	}
	if purged > 0 {
		log.Info().Int64("purged", purged).Msg("Removed expired sessions")
	}
}
