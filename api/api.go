// Package api embeds the OpenAPI contract of the dispatch service.
package api

import _ "embed"

// OpenAPISpec is the raw OpenAPI 3.0 contract served at /openapi.json.
//
//go:embed openapi.yml
var OpenAPISpec []byte
