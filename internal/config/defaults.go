package config

const (
	defaultConfigPath      = "~/.config/dramarec/config.toml"
	projectConfigName      = "dramarec.toml"
	defaultCatalogSource   = SourceCSV
	defaultCatalogPath     = "~/.local/share/dramarec/BL_Drama_Recommendation.csv"
	defaultCatalogDatabase = "~/.local/share/dramarec/catalog.db"
	defaultRecommendCount  = 5
	defaultMaxCount        = 10
	defaultPageSize        = 5
	defaultMaxEntries      = 5000
	defaultAPIBind         = "127.0.0.1:7490"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Catalog sources.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{
			Source:   defaultCatalogSource,
			Path:     defaultCatalogPath,
			Database: defaultCatalogDatabase,
		},
		Recommend: Recommend{
			DefaultCount: defaultRecommendCount,
			MaxCount:     defaultMaxCount,
			PageSize:     defaultPageSize,
		},
		Similarity: Similarity{
			MaxEntries: defaultMaxEntries,
		},
		API: API{
			Bind: defaultAPIBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
