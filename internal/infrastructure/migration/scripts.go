package migration

import "embed"

// scriptsFS holds the versioned SQL migrations, one directory per dialect.
//
//go:embed scripts/sqlite/*.sql scripts/mysql/*.sql
var scriptsFS embed.FS

// SourceScriptsDir is where `migrate create` writes new scripts, relative to
// the repository root.
const SourceScriptsDir = "internal/infrastructure/migration/scripts"
