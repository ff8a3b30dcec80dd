// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events by HTTP POST to a local worker.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// RestaurantTopicPrefix prefixes the FCM topic each restaurant's devices subscribe to.
	RestaurantTopicPrefix = "restaurant-"

	// SessionTokenType marks JWTs issued for guest cart sessions.
	SessionTokenType = "cart_session"

	// MaxNoteLength caps free-text instructions on a cart line or order.
	MaxNoteLength = 200

	// MaxLineQuantity caps the quantity of a single cart line.
	MaxLineQuantity = 99
)
