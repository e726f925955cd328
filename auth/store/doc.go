// Package store defines the persistent token holder used by the session store.
//
// A Holder keeps exactly one value, the bearer token under the `auth_token` key.
// It ships with an in-memory implementation that is sufficient for tests and
// short-lived processes, an afs backed file implementation that survives process
// restarts, and a Redis implementation for hosts sharing a session.
package store
