package configs

import "strings"

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Store selects where notes and flags are persisted.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}

// Kind normalises Driver. Unknown values fall back to memory.
func (c Store) Kind() string {
	switch strings.ToLower(strings.TrimSpace(c.Driver)) {
	case StorePostgres, "pg", "postgresql":
		return StorePostgres
	case StoreSQLite, "sqlite3":
		return StoreSQLite
	default:
		return StoreMemory
	}
}
