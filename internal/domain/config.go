package domain

// Config represents the numutil configuration loaded from numutil.yaml.
type Config struct {
	Table   TableConfig
	Store   StoreConfig
	Logging LoggingConfig
}

type TableConfig struct {
	Workers int
}

type StoreConfig struct {
	Dir   string
	Index bool
}

type LoggingConfig struct {
	Dir   string
	Debug bool
}

// DefaultConfig provides sane defaults if numutil.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Table: TableConfig{Workers: 4},
		Store: StoreConfig{
			Dir:   "runs",
			Index: true,
		},
	}
}
