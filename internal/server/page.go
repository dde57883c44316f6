package server

import _ "embed"

// Minimal map page; the feed itself lives at /api/fires.
//
//go:embed index.html
var indexPage []byte
