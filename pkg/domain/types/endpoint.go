package types

import "fmt"

// EndpointType classifies a trial endpoint
type EndpointType string

const (
	EndpointPrimary     EndpointType = "primary"
	EndpointSecondary   EndpointType = "secondary"
	EndpointExploratory EndpointType = "exploratory"
)

// AllEndpointTypes returns all valid endpoint types
func AllEndpointTypes() []EndpointType {
	return []EndpointType{
		EndpointPrimary,
		EndpointSecondary,
		EndpointExploratory,
	}
}

// IsValid checks if the endpoint type is valid
func (t EndpointType) IsValid() bool {
	switch t {
	case EndpointPrimary, EndpointSecondary, EndpointExploratory:
		return true
	default:
		return false
	}
}

// String returns the string representation of the endpoint type
func (t EndpointType) String() string {
	return string(t)
}

// ParseEndpointType parses a string into an EndpointType
func ParseEndpointType(s string) (EndpointType, error) {
	t := EndpointType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid endpoint type: %s", s)
	}
	return t, nil
}
