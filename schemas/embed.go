// Package schemas embeds the JSON Schema contracts for provider responses.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory
//
//go:embed *.schema.json
var FS embed.FS
