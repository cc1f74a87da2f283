// Package constants contains string constants shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the environment name used for production deployments.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal delivers events to a local HTTP endpoint in push-envelope format.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle delivers events through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// AuthProviderEmail identifies email/password credentials.
	AuthProviderEmail = "email"
)

const (
	// PlatformIOS identifies an iOS push target.
	PlatformIOS = "ios"
	// PlatformAndroid identifies an Android push target.
	PlatformAndroid = "android"
)
