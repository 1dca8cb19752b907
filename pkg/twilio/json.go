package twilio

import (
	"encoding/json"
	"fmt"
	"io"
)

// FromJSON deserializes a complete in-memory JSON buffer into a resource
// value. Unknown wire fields are ignored; missing optional fields stay nil.
// A structural mismatch yields a *ParseError and no resource.
func FromJSON[T any](data []byte) (*T, error) {
	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	return &value, nil
}

// FromJSONReader deserializes a streaming JSON source into a resource value.
// Failures while reading the stream are reported as *ConnectionError;
// structural mismatches as *ParseError.
func FromJSONReader[T any](reader io.Reader) (*T, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &ConnectionError{Message: "reading response stream", Err: err}
	}

	value, err := FromJSON[T](data)
	if err != nil {
		return nil, fmt.Errorf("decoding stream: %w", err)
	}

	return value, nil
}
