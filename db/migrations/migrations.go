package migrations

import "embed"

// FS embeds SQL migration files stored in this directory. The
// golang-migrate library reads them via the iofs source driver. The SQL
// is kept to the dialect shared by PostgreSQL and SQLite so both stores
// apply the same files.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
