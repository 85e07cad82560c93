// Package templates embeds the HTML template tree.
package templates

import "embed"

//go:embed base.html pages/*.html partials/*.html
var FS embed.FS
