package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-news-base-url news API base URL
//	-news-api-key news API access key
//	-news-domains fixed domain filter for news queries
//	-news-page-size articles per news page
//	-news-timeout outbound news request timeout (e.g., "15s")
//	-export-dir location history export directory
//	-bridge-timeout location bridge call timeout (e.g., "5s")
//	-rate-limit-cooldown news rate-limit cooldown window (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var newsBaseURL string
	var newsAPIKey string
	var newsDomains string
	var newsPageSize int
	var newsTimeout time.Duration
	var exportDir string
	var bridgeTimeout time.Duration
	var rateLimitCooldown time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&newsBaseURL, "news-base-url", "", "News API base URL")
	flag.StringVar(&newsAPIKey, "news-api-key", "", "News API access key")
	flag.StringVar(&newsDomains, "news-domains", "", "News domain filter")
	flag.IntVar(&newsPageSize, "news-page-size", 0, "Articles per news page")
	flag.DurationVar(&newsTimeout, "news-timeout", 0, "News request timeout (e.g., 15s)")
	flag.StringVar(&exportDir, "export-dir", "", "Location history export directory")
	flag.DurationVar(&bridgeTimeout, "bridge-timeout", 0, "Location bridge call timeout (e.g., 5s)")
	flag.DurationVar(&rateLimitCooldown, "rate-limit-cooldown", 0, "News rate-limit cooldown (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		News: News{
			BaseURL:        newsBaseURL,
			APIKey:         newsAPIKey,
			Domains:        newsDomains,
			PageSize:       newsPageSize,
			RequestTimeout: newsTimeout,
		},
		Location: Location{
			ExportDir:     exportDir,
			BridgeTimeout: bridgeTimeout,
		},
		Workers: Workers{
			RateLimitCooldown: rateLimitCooldown,
		},
		JSONFilePath: jsonConfigPath,
	}
}
