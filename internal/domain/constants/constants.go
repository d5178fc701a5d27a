// Package constants holds shared cross-layer constant values.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider types for the scan trigger.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
