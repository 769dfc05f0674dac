package cmd

import (
	"runtime"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/rs/zerolog/log"
	"go.uber.org/automaxprocs/maxprocs"
)

// setupSystemResources configures GOMEMLIMIT and GOMAXPROCS from the sandbox limits.
func setupSystemResources(ratio float64) {
	limit, err := memlimit.SetGoMemLimitWithOpts(
		memlimit.WithRatio(ratio),
		memlimit.WithProvider(memlimit.ApplyFallback(memlimit.FromCgroup, memlimit.FromSystem)),
	)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to set GOMEMLIMIT automatically")
	} else {
		log.Debug().Str("component", "system").Float64("ratio", ratio).Int64("limit_bytes", limit).Msg("Automatic GOMEMLIMIT activated")
	}

	_, err = maxprocs.Set(
		maxprocs.Logger(func(s string, i ...interface{}) { log.Debug().Msgf(s, i...) }),
	)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to set GOMAXPROCS automatically")
	}
	log.Debug().Str("component", "system").Int("gomaxprocs", runtime.GOMAXPROCS(0)).Msg("System resources configured")
}
