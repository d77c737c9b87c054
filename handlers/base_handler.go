package handlers

import (
	"net/http"

	"rooms-dashboard/pkg/auth"
	"rooms-dashboard/pkg/flash"
	"rooms-dashboard/pkg/session"
	"rooms-dashboard/pkg/template"
)

type BaseHandler struct {
	renderer *template.Renderer
	flash    *flash.Store
}

const flashCookie = "flash_id"

// flashKey identifies who a transient message belongs to: the session when
// logged in, a throwaway cookie otherwise (so the "log in first" hints still
// reach anonymous visitors).
func (h *BaseHandler) flashKey(w http.ResponseWriter, r *http.Request) string {
	if sess := auth.SessionFromContext(r.Context()); sess != nil {
		return sess.ID
	}
	if c, err := r.Cookie(flashCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id, err := session.NewID()
	if err != nil {
		return r.RemoteAddr
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

// pageData seeds the common template fields every page shares.
func (h *BaseHandler) pageData(w http.ResponseWriter, r *http.Request) map[string]interface{} {
	sess := auth.SessionFromContext(r.Context())

	data := map[string]interface{}{
		"LoggedIn": sess != nil,
		"IsAdmin":  sess.IsAdmin(),
		"Email":    "",
	}
	if sess != nil {
		data["Email"] = sess.Email
	}
	if msg, ok := h.flash.Get(h.flashKey(w, r)); ok {
		data["Flash"] = msg
	}
	return data
}
