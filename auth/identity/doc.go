// Package identity implements an HTTP client for the remote identity service
// that validates bearer tokens and terminates sessions.
//
// Every authenticated call receives its token explicitly; the bearer header is
// injected per request by an oauth2.Transport built over a static token source,
// so concurrent calls using different tokens never share header state.
package identity
