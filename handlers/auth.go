package handlers

import (
	"log"
	"net/http"
	"time"

	"rooms-dashboard/config"
	"rooms-dashboard/pkg/auth"
	"rooms-dashboard/pkg/backend"
	"rooms-dashboard/pkg/flash"
	"rooms-dashboard/pkg/session"
	"rooms-dashboard/pkg/template"
)

// redirectDelay is how long the post-login and post-register confirmation
// pages stay on screen before navigating on.
const redirectDelay = 2

type AuthHandler struct {
	BaseHandler
	client   *backend.Client
	sessions session.Store
	cfg      config.SessionConfig
}

func NewAuthHandler(renderer *template.Renderer, flashStore *flash.Store, client *backend.Client, sessions session.Store, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{renderer: renderer, flash: flashStore},
		client:      client,
		sessions:    sessions,
		cfg:         cfg,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.renderer.Render(w, "login.html", map[string]interface{}{"Error": "", "Email": ""})
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		h.renderer.Render(w, "login.html", map[string]interface{}{
			"Error": "Ingresa email y contraseña",
			"Email": email,
		})
		return
	}

	resp, err := h.client.Login(r.Context(), email, password)
	if err != nil {
		log.Printf("❌ Login failed for %s: %v", email, err)
		h.renderer.Render(w, "login.html", map[string]interface{}{
			"Error": err.Error(),
			"Email": email,
		})
		return
	}

	identity, err := auth.DecodeToken(resp.Token)
	if err != nil {
		log.Printf("❌ Backend returned an undecodable token: %v", err)
		h.renderer.Render(w, "login.html", map[string]interface{}{
			"Error": "Error en el login",
			"Email": email,
		})
		return
	}

	userEmail := identity.Email
	if userEmail == "" {
		userEmail = resp.Email
	}

	id, err := session.NewID()
	if err != nil {
		log.Printf("❌ Could not create session id: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	sess := session.Session{
		ID:        id,
		Token:     resp.Token,
		Role:      identity.Role,
		Email:     userEmail,
		CreatedAt: now,
		ExpiresAt: now.Add(h.cfg.TTL),
	}
	if err := h.sessions.Put(sess); err != nil {
		log.Printf("❌ Could not persist session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.cfg.TTL.Seconds()),
	})

	log.Printf("✅ User logged in. Email: %s, Role: %s", userEmail, identity.Role)
	h.renderer.Render(w, "redirect.html", map[string]interface{}{
		"Message": "Login exitoso",
		"URL":     "/home",
		"Delay":   redirectDelay,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.renderer.Render(w, "register.html", map[string]interface{}{"Error": "", "Name": "", "Email": ""})
		return
	}

	req := backend.RegisterRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
	}
	if req.Role != "ADMIN" {
		req.Role = "USER"
	}

	if err := h.client.Register(r.Context(), req); err != nil {
		log.Printf("❌ Registration failed for %s: %v", req.Email, err)
		h.renderer.Render(w, "register.html", map[string]interface{}{
			"Error": err.Error(),
			"Name":  req.Name,
			"Email": req.Email,
		})
		return
	}

	log.Printf("✅ User registered: %s", req.Email)
	h.renderer.Render(w, "redirect.html", map[string]interface{}{
		"Message": "Usuario registrado correctamente!",
		"URL":     "/login",
		"Delay":   redirectDelay,
	})
}

// Logout clears the persisted session and returns to the entry view.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cfg.CookieName); err == nil {
		if err := h.sessions.Delete(cookie.Value); err != nil {
			log.Printf("❌ Could not delete session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
