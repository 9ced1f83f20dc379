// Package openapi embeds the OpenAPI document of the catalog JSON API.
package openapi

import _ "embed"

// YAML contains the embedded OpenAPI document.
//
//go:embed openapi.yaml
var YAML []byte
