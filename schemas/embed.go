package schemas

import "embed"

// FS contains the schema bundled with the binary.
//
//go:embed *.yaml
var FS embed.FS
