// Package static holds the page assets that are compiled into the server.
package static

import "embed"

//go:embed *.js *.css
var FS embed.FS
