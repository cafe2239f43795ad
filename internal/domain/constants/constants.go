// Package constants defines shared environment and provider identifiers.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes restock events over plain HTTP to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes restock events through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// ProductPathPrefix is the canonical in-app URL prefix for product pages.
// Notification click routing and window matching both rely on it.
const ProductPathPrefix = "/products/"
