// Package session implements the client side session store: the single source
// of truth for authentication state within a running client.
//
// A Store holds the bearer token, the authentication flag and the verified user.
// It is constructed explicitly with a persistent token holder, an identity
// service client and a navigator, and passed to the consumers that need it.
//
//	holder := store.NewFile("~/.authsession")
//	sessions, err := session.New(ctx, holder, identity.New(baseURL), navigator)
//	...
//	_ = sessions.Establish(ctx, token)
//	if !sessions.Verify(ctx) {
//		// already logged out and redirected
//	}
//
// The store never holds its lock across an identity service call. Establish and
// Terminate advance a generation counter; a Verify whose generation was
// superseded while the remote call was in flight discards its outcome.
package session
