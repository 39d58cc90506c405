// Package spec embeds the endpoint description served at GET /api.
package spec

import _ "embed"

// Endpoints contains the raw bytes of endpoints.json, embedded at compile time.
// Serving it from the binary keeps the description and the running code in one release.
//
//go:embed endpoints.json
var Endpoints []byte
