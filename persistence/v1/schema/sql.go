package schema

// the DDL sticks to types every supported driver accepts
const schema = `CREATE TABLE IF NOT EXISTS notes (
	id CHAR(36) NOT NULL PRIMARY KEY,
	title VARCHAR(255) NOT NULL UNIQUE,
	content TEXT NOT NULL,
	category VARCHAR(100),
	published BOOLEAN DEFAULT FALSE,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

const dropSchema = `DROP TABLE IF EXISTS notes`
