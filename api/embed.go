// Package api holds the OpenAPI document of the HTTP interface. The servers
// package under internal/generated is generated from it.
package api

import _ "embed"

//go:embed openapi.yml
var OpenAPI []byte
