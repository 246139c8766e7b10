package servers

import (
	"negotiation/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger returns the parsed OpenAPI document the handlers were generated from.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	return loader.LoadFromData(api.OpenAPI)
}
