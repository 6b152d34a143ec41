package configs

// SQLite configures the file-backed store used for single-node
// deployments. Migrations are always applied on open.
type SQLite struct {
	Path string `env:"PATH" envDefault:"perf-bi.db"`
}
