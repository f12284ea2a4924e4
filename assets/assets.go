// Package assets embeds the static files of the viewer server.
package assets

import _ "embed"

// Index is the raw viewer page; the server minifies it at startup.
//
//go:embed index.html
var Index []byte
