// Package twilio defines the public API surface of the client library:
// resource types, operation parameter builders, error types, configuration,
// and the Client interface implemented by internal/client.
//
// Resources are immutable mirrors of server JSON entities and are produced
// only by deserializing API responses. Operation parameters are value
// structs with all-optional fields; a field that was never set is omitted
// from the outgoing request entirely, never sent as a zero value.
package twilio
