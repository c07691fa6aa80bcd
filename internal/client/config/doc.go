// Package config loads runtime configuration for the MindAnalyzer CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c/-config or MINDANALYZER_CONFIG.
//  3. MINDANALYZER_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL (http://localhost:5000)
//	-d string   local database file (mindanalyzer.db)
//	-t int      request timeout in seconds (30)
//	-l string   force the UI language (en, ru)
//	-v string   log level (warn)
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:5000",
//	  "database_path": "mindanalyzer.db",
//	  "request_timeout": "30s",
//	  "language": "en",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	MINDANALYZER_SERVER_URL, MINDANALYZER_DB_PATH,
//	MINDANALYZER_REQUEST_TIMEOUT ("30s"), MINDANALYZER_LANGUAGE,
//	MINDANALYZER_LOG_LEVEL
package config
