// Package resources serves the dashboard's static assets.
//
// Production builds embed the static directory. Builds with the dev tag read
// it from disk so edits show up on reload.
package resources

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// URLPrefix is the mount point of the static handler.
const URLPrefix = "/static/"

// StaticPath returns the URL path for a static asset.
func StaticPath(name string) string {
	return URLPrefix + name
}
