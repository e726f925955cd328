// Package mock provides an in-process identity service that facilitates unit
// testing of the session store and identity client.
//
// The service issues HMAC signed JWT bearer tokens on login, validates them on
// the "who am I" endpoint and revokes them on logout, without any external
// dependency. Individual endpoints can be overridden to simulate failures.
package mock
