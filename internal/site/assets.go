package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets
var assets embed.FS

// Assets returns the stylesheet, client script and images.
func Assets() fs.FS {
	fsys, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return fsys
}

// AssetHandler serves Assets.
func AssetHandler() http.Handler {
	return http.FileServer(http.FS(Assets()))
}
