package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"rooms-dashboard/models"
	"rooms-dashboard/pkg/auth"
	"rooms-dashboard/pkg/flash"
	"rooms-dashboard/pkg/template"
	"rooms-dashboard/services"
)

type ReservationHandler struct {
	BaseHandler
	reservations *services.ReservationService
	rooms        *services.RoomService
}

func NewReservationHandler(renderer *template.Renderer, flashStore *flash.Store, reservations *services.ReservationService, rooms *services.RoomService) *ReservationHandler {
	return &ReservationHandler{
		BaseHandler:  BaseHandler{renderer: renderer, flash: flashStore},
		reservations: reservations,
		rooms:        rooms,
	}
}

// Reservas renders the reservation table plus the room selector. Both lists
// load concurrently; a failed room load only loses the selector names, a
// failed reservation load surfaces as the page error.
func (h *ReservationHandler) Reservas(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	query := r.URL.Query().Get("q")

	var (
		reservas []models.Reservation
		g        errgroup.Group
	)
	g.Go(func() error {
		var err error
		reservas, err = h.reservations.Fetch(r.Context(), sess)
		return err
	})
	g.Go(func() error {
		if _, err := h.rooms.Fetch(r.Context(), sess.BearerToken()); err != nil {
			log.Printf("❌ Could not load rooms for selector: %v", err)
		}
		return nil
	})

	data := h.pageData(w, r)
	if err := g.Wait(); err != nil {
		data["Error"] = "No se pudieron cargar las reservas"
	}

	rooms := h.rooms.Rooms()
	data["Reservas"] = services.FilterReservations(reservas, rooms, query)
	data["Salas"] = rooms
	data["Busqueda"] = query
	data["RoomNames"] = roomNames(rooms)

	h.renderer.Render(w, "reservas.html", data)
}

func roomNames(rooms []models.Room) map[int64]string {
	names := make(map[int64]string, len(rooms))
	for _, r := range rooms {
		names[r.ID] = r.Nombre
	}
	return names
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	key := h.flashKey(w, r)

	res := models.Reservation{
		RoomID:          parseID(r.FormValue("roomId")),
		FechaHoraInicio: toISO(r.FormValue("fechaHoraInicio")),
		FechaHoraFin:    toISO(r.FormValue("fechaHoraFin")),
	}

	if err := h.reservations.Create(r.Context(), sess.BearerToken(), res); err != nil {
		h.flash.Set(key, flash.Error, err.Error())
	} else {
		h.flash.Set(key, flash.Success, "Reserva creada correctamente")
	}
	http.Redirect(w, r, "/reservas", http.StatusSeeOther)
}

func (h *ReservationHandler) Edit(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	key := h.flashKey(w, r)

	if !sess.IsAdmin() {
		h.flash.Set(key, flash.Info, "Sin permisos")
		http.Redirect(w, r, "/reservas", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	res := models.Reservation{
		ID:              id,
		RoomID:          parseID(r.FormValue("roomId")),
		FechaHoraInicio: toISO(r.FormValue("fechaHoraInicio")),
		FechaHoraFin:    toISO(r.FormValue("fechaHoraFin")),
	}

	if err := h.reservations.Edit(r.Context(), sess.Token, res); err != nil {
		h.flash.Set(key, flash.Error, err.Error())
	} else {
		h.flash.Set(key, flash.Success, "Reserva actualizada correctamente")
	}
	http.Redirect(w, r, "/reservas", http.StatusSeeOther)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	key := h.flashKey(w, r)

	if !sess.IsAdmin() {
		h.flash.Set(key, flash.Info, "Sin permisos")
		http.Redirect(w, r, "/reservas", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.reservations.Delete(r.Context(), sess.Token, id); err != nil {
		h.flash.Set(key, flash.Error, err.Error())
	} else {
		h.flash.Set(key, flash.Success, "Reserva eliminada")
	}
	http.Redirect(w, r, "/reservas", http.StatusSeeOther)
}

// ChangeStatus requests the transition named in the form; the backend is
// the authority on whether the reservation can actually move there.
func (h *ReservationHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	key := h.flashKey(w, r)

	if !sess.IsAdmin() {
		h.flash.Set(key, flash.Info, "Sin permisos")
		http.Redirect(w, r, "/reservas", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	estado := r.FormValue("estado")
	if err := h.reservations.ChangeStatus(r.Context(), sess.Token, id, estado); err != nil {
		h.flash.Set(key, flash.Error, err.Error())
	} else {
		h.flash.Set(key, flash.Success, fmt.Sprintf("Estado cambiado a %s", estado))
	}
	http.Redirect(w, r, "/reservas", http.StatusSeeOther)
}

func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// toISO converts the datetime-local form value to the RFC 3339 form the
// backend expects. Empty or unparseable values pass through untouched so
// the required-field check and the backend see the raw input.
func toISO(v string) string {
	if v == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02T15:04", v)
	if err != nil {
		return v
	}
	return t.UTC().Format(time.RFC3339)
}
