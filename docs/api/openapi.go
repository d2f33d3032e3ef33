// Package api embeds the OpenAPI description of the HTTP API.
package api

import _ "embed"

// OpenAPI is docs/api/openapi.yaml, compiled into the binary so the service
// serves it regardless of working directory.
//
//go:embed openapi.yaml
var OpenAPI []byte
