// internal/app/features/errors/errors.go
package errors

import (
	"net/http"
	"strings"

	"github.com/dalemusser/techhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
	BackURL string
}

// Handler is the errors feature handler.
// No catalog needed; it just renders templates.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// NotFound renders a friendly "page not found" page for browsers and a
// plain 404 for everything else.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("not found", zap.String("path", r.URL.Path))

	if !wantsHTML(r) {
		http.NotFound(w, r)
		return
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found"),
		Message: "The page you were looking for doesn't exist.",
		BackURL: "/",
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
