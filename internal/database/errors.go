// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package database

import (
	"io"

	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/models"
)

// ErrTxConflict is returned by InTx when the backend aborted the transaction
// because a concurrent transaction wrote the same rows. The whole
// transaction may be retried.
var ErrTxConflict = &models.Error{Kind: models.KindConflict, Detail: "Concurrent update conflict, please retry"}

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}

// conflictFrom wraps a unique violation in a Conflict with the given detail.
func conflictFrom(err error, detail string) *models.Error {
	return &models.Error{Kind: models.KindConflict, Detail: detail, Err: err}
}
