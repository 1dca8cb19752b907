// Package restclient provides the main entry point for creating API clients.
//
// Most callers should use New with a twilio.Config, or one of the
// convenience constructors:
//
//	client, err := restclient.NewWithAuthToken("ACxxxx", "auth-token")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	call, err := client.Calls().Create(ctx,
//		twilio.NewCallCreate("+15551234567", "+15557654321").
//			WithURLString("https://example.com/twiml"))
package restclient
