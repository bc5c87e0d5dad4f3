// Package assets embeds the default dictionary so the server runs without
// any settings file.
package assets

import "embed"

// DefaultList is the name of the embedded word list inside FS.
const DefaultList = "words.txt"

//go:embed words.txt
var FS embed.FS
