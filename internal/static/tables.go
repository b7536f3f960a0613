package static

import (
	"path/filepath"
	"strings"
)

// AliasTable maps a clean URL path to a file path under the public root.
type AliasTable map[string]string

// DefaultAliases returns the pretty routes of the clinic site.
func DefaultAliases() AliasTable {
	return AliasTable{
		"/":        "/main.html",
		"/branch":  "/branch.html",
		"/contact": "/contact.html",
		"/doctor":  "/doctor.html",
	}
}

// DefaultContentType is used for extensions missing from the MIME table
const DefaultContentType = "text/plain"

// .js keeps the legacy text/javascript label, pages depend on it.
var mimeTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".json": "application/json",
	".txt":  "text/plain",
}

// ContentType returns the content type for a file name based on its extension
func ContentType(name string) string {
	if ct, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return DefaultContentType
}
