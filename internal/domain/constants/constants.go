// Package constants holds string values shared across layers.
package constants

const (
	EnvDevelop = "develop"

	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
