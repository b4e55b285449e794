// Package constants holds shared provider and environment identifiers.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"
	// EnvProduction marks the production environment.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// DedupProviderMemory keeps dedup entries in process memory.
	DedupProviderMemory = "memory"
	// DedupProviderRedis keeps dedup entries in Redis for multi-instance deployments.
	DedupProviderRedis = "redis"
)
