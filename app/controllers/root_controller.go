package controllers

import "net/http"

// RootController serves the informational endpoints.
type RootController struct {
	Version string
}

// NewRootController creates a new RootController reporting the given API version.
func NewRootController(version string) *RootController {
	return &RootController{Version: version}
}

// Root handles GET /.
func (c *RootController) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Hello TODOS API"})
}

// Hello handles GET /hello.
func (c *RootController) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Hello World"})
}

// GetVersion handles GET /version.
func (c *RootController) GetVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "API version: " + c.Version})
}
