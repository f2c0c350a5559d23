package bench

// benchSchema drops and recreates the tables used by the benchmarks.
const benchSchema = `
PRAGMA journal_mode = WAL;

DROP TABLE IF EXISTS users;

CREATE TABLE users (
	id INTEGER PRIMARY KEY NOT NULL,
	created INTEGER NOT NULL,
	email TEXT NOT NULL,
	active INTEGER NOT NULL
);
CREATE INDEX users_created ON users(created);
`
