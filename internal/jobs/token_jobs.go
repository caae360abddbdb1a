package jobs

import (
	"context"
	"time"

	"shipperd-backend/internal/logger"
)

// PurgeRevokedTokens deletes blacklist rows whose refresh token has already
// expired. Expired tokens fail JWT validation on their own, so keeping the
// rows only grows the table.
func (jr *JobRunner) PurgeRevokedTokens() {
	jr.runWithRecovery("PurgeRevokedTokens", func() {
		ctx := context.Background()

		purged, err := jr.store.TokenRepository.PurgeExpired(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to purge revoked tokens", "error", err)
			return
		}
		logger.Info("Purged expired revoked tokens", "count", purged)
	})
}
