// Package constants collects string identifiers shared between config and infra.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cache providers accepted in cache.provider.
const (
	CacheProviderMemory = "memory"
	CacheProviderRedis  = "redis"
	CacheProviderNone   = "none"
)

// ServiceOrderTopic is the default topic name used by the local publisher.
const ServiceOrderTopic = "service-orders"
