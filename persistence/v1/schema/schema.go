package schema

const schema = `CREATE TABLE IF NOT EXISTS todo (
	id BIGINT PRIMARY KEY AUTO_INCREMENT,
	title TEXT,
	description TEXT,
	createdAt TIMESTAMP
);`

const dropSchema = `DROP TABLE todo;`
