package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pucklab/rinkside/internal/nhl"
)

const standingsWarmTimeout = 30 * time.Second

// RegisterStandingsWarmJob keeps the standings cache fresh so page loads
// rarely pay the upstream round trip. The cadence matches the client's
// cache TTL.
func RegisterStandingsWarmJob(client *nhl.Client) error {
	if client == nil {
		return fmt.Errorf("standings warm job requires NHL client")
	}

	jobName := "standings_cache_warm"
	cronExpr := "*/5 * * * *"
	jobLogger := log.With().
		Str("component", "standings_warm_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Logger()

	_, err := AddJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), standingsWarmTimeout)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		if err := client.Refresh(ctx); err != nil {
			jobLogger.Warn().Err(err).Msg("Standings cache warm failed")
			return
		}
		jobLogger.Debug().Msg("Standings cache warmed")
	})
	if err != nil {
		return fmt.Errorf("failed to register standings warm job: %w", err)
	}
	return nil
}
