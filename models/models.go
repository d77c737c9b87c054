package models

// Room and reservation payloads mirror the backend API field names, which
// are Spanish for the domain fields and English for identifiers.

const (
	RoomAvailable   = "AVAILABLE"
	RoomUnavailable = "UNAVAILABLE"
)

const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
)

type Room struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Capacidad int    `json:"capacidad"`
	Ubicacion string `json:"ubicacion"`
	Estado    string `json:"estado"`
}

func (r Room) Available() bool {
	return r.Estado == RoomAvailable
}

// EstadoLabel is the display label for a room's availability.
func (r Room) EstadoLabel() string {
	if r.Available() {
		return "Disponible"
	}
	return "No Disponible"
}

type Reservation struct {
	ID              int64  `json:"id"`
	RoomID          int64  `json:"roomId"`
	Email           string `json:"email"`
	FechaHoraInicio string `json:"fechaHoraInicio"`
	FechaHoraFin    string `json:"fechaHoraFin"`
	Estado          string `json:"estado"`
}

// EstadoLabel maps a reservation estado to its display label. Unknown values
// render nothing; the backend owns the set of valid states.
func (r Reservation) EstadoLabel() string {
	switch r.Estado {
	case ReservationPending:
		return "Pendiente"
	case ReservationConfirmed:
		return "Confirmada"
	case ReservationCancelled:
		return "Cancelada"
	}
	return ""
}

// NextActions lists the status transitions the UI offers for a reservation.
// The backend still decides whether a transition is legal.
func (r Reservation) NextActions() []string {
	switch r.Estado {
	case ReservationPending:
		return []string{ReservationConfirmed, ReservationCancelled}
	case ReservationConfirmed:
		return []string{ReservationCancelled}
	}
	return nil
}
