// Package constants holds shared provider identifiers.
package constants

const (
	// StorageProviderBucket selects the gocloud.dev blob bucket backend.
	StorageProviderBucket = "bucket"
	// StorageProviderDropbox selects the Dropbox HTTP backend.
	StorageProviderDropbox = "dropbox"

	// PubSubProviderLocal selects the local HTTP push-simulation publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)
