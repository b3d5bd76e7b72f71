package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. golang-migrate
// reads them through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
