// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

package store

const (
	upsertSessionCredential = `
		INSERT INTO session (id, access, expires_at, saved_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			access     = excluded.access,
			expires_at = excluded.expires_at,
			saved_at   = excluded.saved_at;`

	getSessionCredential = `
		SELECT access, expires_at, saved_at
		FROM session
		WHERE id = 1;`

	deleteSessionCredential = `
		DELETE FROM session
		WHERE id = 1;`

	saveAnalysisRecord = `
		INSERT INTO analysis_history (
			file_name,
			algorithm,
			category,
			confidence,
			analyzed_at
		) VALUES ($1, $2, $3, $4, $5);`
)
