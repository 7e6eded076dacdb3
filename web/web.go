// Package web holds the embedded browser front end.
package web

import "embed"

//go:embed index.html script.js styles.css
var Assets embed.FS
