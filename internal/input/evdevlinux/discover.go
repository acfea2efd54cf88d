package evdevlinux

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

// Discover returns the device nodes matching pattern. While nothing matches it
// retries every interval until ctx is done.
func Discover(ctx context.Context, pattern string, interval time.Duration, logger contracts.Logger) ([]string, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid device pattern %q: %w", pattern, err)
		}
		if len(paths) > 0 {
			return paths, nil
		}

		logger.Debug("No keyboard found, waiting",
			logger.Field().String("pattern", pattern),
			logger.Field().Int("attempt", attempt),
			logger.Field().Duration("interval", interval))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
