// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO session (
			id,
			token,
			user_id,
			username,
			role,
			saved_at
		) VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			username = excluded.username,
			role = excluded.role,
			saved_at = excluded.saved_at;`

	loadSession = `
		SELECT
			token,
			user_id,
			username,
			role,
			saved_at
		FROM session
		WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)
