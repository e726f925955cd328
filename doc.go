// Package authsession wires a client side authentication session.
//
// It assembles a session.Store from configuration: a persistent token holder
// (file, redis or memory), an identity service client and a navigator.
//
// Usage:
//
//	options := &authsession.Options{ServiceURL: "http://localhost:8000"}
//	client, err := authsession.New(ctx, options)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//	if err = client.Login(ctx, "a@example.com", "secret"); err != nil {
//		log.Fatal(err)
//	}
//	if client.Sessions.Verify(ctx) {
//		fmt.Println(client.Sessions.User().Name())
//	}
package authsession
