package db

import "embed"

// migrationsFS carries the schema migration scripts into the binary so a
// fresh events database can be stood up without any files on disk.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS
