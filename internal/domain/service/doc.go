// Package service declares the ports the use cases depend on: credential
// hashing, tokens, photo storage, pickup codes, the order event publisher,
// the list cache and metrics. Implementations live under internal/infra.
package service
