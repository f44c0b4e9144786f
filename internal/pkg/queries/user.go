package queries

const (
	userColumns = `id, email, full_name, genere, specializzazione, role, enabled, created_at`

	UserFindByEmail = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	UserFindAll = `SELECT ` + userColumns + ` FROM users ORDER BY email`

	UserInsert = `INSERT INTO users (email, full_name, genere, specializzazione, role, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	UserUpdate = `UPDATE users SET full_name = $2, genere = $3, specializzazione = $4, role = $5, enabled = $6 WHERE id = $1`

	UserSetEnabled = `UPDATE users SET enabled = $2 WHERE id = $1`
)
