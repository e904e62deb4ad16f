package user

const (
	SelectUsers = `
		SELECT id, firstname, lastname, role, created_at, revision
		FROM users
		ORDER BY lastname, firstname, id
	`
	SelectUserByID = `
		SELECT id, firstname, lastname, role, created_at, revision
		FROM users
		WHERE id = $1
	`
	SelectUserExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	InsertUser       = `
		INSERT INTO users (firstname, lastname, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, firstname, lastname, role, created_at, revision
	`
	UpdateUserByID = `
		UPDATE users
		SET firstname = $1,
		    lastname = $2,
		    role = $3,
		    revision = revision + 1
		WHERE id = $4
		RETURNING id, firstname, lastname, role, created_at, revision
	`
	DeleteUserByID = `DELETE FROM users WHERE id = $1`
)
