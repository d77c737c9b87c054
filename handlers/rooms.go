package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"rooms-dashboard/pkg/auth"
	"rooms-dashboard/pkg/flash"
	"rooms-dashboard/pkg/template"
	"rooms-dashboard/services"
)

type RoomHandler struct {
	BaseHandler
	rooms *services.RoomService
}

func NewRoomHandler(renderer *template.Renderer, flashStore *flash.Store, rooms *services.RoomService) *RoomHandler {
	return &RoomHandler{
		BaseHandler: BaseHandler{renderer: renderer, flash: flashStore},
		rooms:       rooms,
	}
}

// Home renders the room grid. It works without a session too; the request
// simply goes out unauthenticated.
func (h *RoomHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	query := r.URL.Query().Get("q")

	data := h.pageData(w, r)
	if _, err := h.rooms.Fetch(r.Context(), sess.BearerToken()); err != nil {
		data["Error"] = "No se pudieron cargar las salas"
	}
	data["Rooms"] = h.rooms.Filter(query)
	data["Busqueda"] = query

	h.renderer.Render(w, "home.html", data)
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	key := h.flashKey(w, r)

	nombre := r.FormValue("nombre")
	capacidad := r.FormValue("capacidad")
	ubicacion := r.FormValue("ubicacion")

	// Field presence is checked before anything goes over the wire.
	if nombre == "" || capacidad == "" || ubicacion == "" {
		h.flash.Set(key, flash.Error, "Todos los campos son obligatorios")
		h.redirectHome(w, r)
		return
	}
	if sess == nil {
		h.flash.Set(key, flash.Info, "Sin permisos")
		h.redirectHome(w, r)
		return
	}

	if err := h.rooms.Create(r.Context(), sess.Token, nombre, capacidad, ubicacion); err != nil {
		h.flash.Set(key, flash.Error, err.Error())
	} else {
		h.flash.Set(key, flash.Success, "Sala creada exitosamente")
	}
	h.redirectHome(w, r)
}

func (h *RoomHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	key := h.flashKey(w, r)

	if sess == nil {
		h.flash.Set(key, flash.Info, "Debes estar logueado para actualizar")
		h.redirectHome(w, r)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if _, err := h.rooms.Toggle(r.Context(), sess.Token, id, r.FormValue("estado")); err != nil {
		h.flash.Set(key, flash.Error, err.Error())
	} else {
		h.flash.Set(key, flash.Success, "Estado actualizado correctamente")
	}
	h.redirectHome(w, r)
}

func (h *RoomHandler) Edit(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	key := h.flashKey(w, r)

	if sess == nil {
		h.flash.Set(key, flash.Info, "Sin permisos")
		h.redirectHome(w, r)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	room, ok := h.rooms.FindByID(id)
	if !ok {
		// Snapshot may be cold after a restart.
		if _, err := h.rooms.Fetch(r.Context(), sess.Token); err == nil {
			room, ok = h.rooms.FindByID(id)
		}
	}
	if !ok {
		h.flash.Set(key, flash.Error, "Sala no encontrada")
		h.redirectHome(w, r)
		return
	}

	err = h.rooms.Edit(r.Context(), sess.Token, room,
		r.FormValue("nombre"), r.FormValue("capacidad"), r.FormValue("ubicacion"))
	if err != nil {
		h.flash.Set(key, flash.Error, err.Error())
	} else {
		h.flash.Set(key, flash.Success, "Sala editada correctamente")
	}
	h.redirectHome(w, r)
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	key := h.flashKey(w, r)

	if sess == nil {
		h.flash.Set(key, flash.Info, "Debes estar logueado para eliminar")
		h.redirectHome(w, r)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.rooms.Delete(r.Context(), sess.Token, id); err != nil {
		h.flash.Set(key, flash.Error, err.Error())
	} else {
		h.flash.Set(key, flash.Success, "Sala eliminada con éxito")
	}
	h.redirectHome(w, r)
}

// redirectHome keeps the active search when bouncing back after an action.
func (h *RoomHandler) redirectHome(w http.ResponseWriter, r *http.Request) {
	target := "/home"
	if q := r.FormValue("q"); q != "" {
		target += "?q=" + url.QueryEscape(q)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
