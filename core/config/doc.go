// Package config provides configuration management for listsync.
//
// It uses godotenv to overlay a local .env file and Viper to map environment
// variables onto nested keys (SERVER_PORT -> server.port). Defaults come from the
// 'default' struct tags of each partial configuration.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Database: view database connection (mysql or sqlite)
//   - Storage: S3/MinIO credentials and the bucket holding source snapshots
//   - Log: logging level and format
//   - Sync: source prefix, identifier field, default strategy and snapshot cache TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.Strategy)
package config
