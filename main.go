package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	"rooms-dashboard/config"
	"rooms-dashboard/handlers"
	"rooms-dashboard/pkg/auth"
	"rooms-dashboard/pkg/backend"
	"rooms-dashboard/pkg/flash"
	"rooms-dashboard/pkg/session"
	"rooms-dashboard/pkg/template"
	"rooms-dashboard/services"
)

// setupSessionStore picks the session backend: Postgres when a database is
// configured, Redis when a host is configured, in-memory otherwise.
func setupSessionStore(cfg *config.Config) session.Store {
	if cfg.Database.URL != "" {
		db, err := sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("❌ Could not open database: %v", err)
		}
		store, err := session.NewPostgresStore(db)
		if err != nil {
			log.Fatalf("❌ Could not set up Postgres session store: %v", err)
		}
		log.Printf("🗄️ Sessions stored in Postgres")
		return store
	}

	if cfg.Redis.Host != "" {
		store, err := session.NewRedisStore(session.RedisOptions{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
		})
		if err != nil {
			log.Printf("❌ Redis connection failed, falling back to memory: %v", err)
			return session.NewMemoryStore()
		}
		log.Printf("🧠 Sessions stored in Redis")
		return store
	}

	log.Printf("💡 Sessions stored in memory (set DATABASE_URL or REDIS_HOST to persist)")
	return session.NewMemoryStore()
}

func main() {
	log.Printf("🚀 Starting rooms dashboard...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	template.InitTemplates()

	sessionStore := setupSessionStore(cfg)
	client := backend.NewClient(cfg.Backend.BaseURL)
	flashStore := flash.NewStore()
	renderer := template.NewRenderer()

	roomService := services.NewRoomService(client)
	reservationService := services.NewReservationService(client)

	authHandler := handlers.NewAuthHandler(renderer, flashStore, client, sessionStore, cfg.Session)
	roomHandler := handlers.NewRoomHandler(renderer, flashStore, roomService)
	reservationHandler := handlers.NewReservationHandler(renderer, flashStore, reservationService, roomService)

	mw := auth.NewMiddleware(sessionStore, cfg.Session.CookieName)

	log.Printf("⚙️ Setting up rate limiters...")
	limiter := handlers.NewRateLimiter()

	log.Printf("🛣️ Setting up routes...")
	http.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
	http.HandleFunc("GET /login", limiter.ViewLimit.RateLimit(authHandler.Login))
	http.HandleFunc("POST /login", limiter.LoginLimit.RateLimit(authHandler.Login))
	http.HandleFunc("GET /registro", limiter.ViewLimit.RateLimit(authHandler.Register))
	http.HandleFunc("POST /registro", limiter.LoginLimit.RateLimit(authHandler.Register))
	http.HandleFunc("/logout", mw.WithSession(authHandler.Logout))

	http.HandleFunc("GET /home", mw.WithSession(limiter.ViewLimit.RateLimit(roomHandler.Home)))
	http.HandleFunc("POST /rooms/create", mw.WithSession(limiter.ActionLimit.RateLimit(roomHandler.Create)))
	http.HandleFunc("POST /rooms/{id}/toggle", mw.WithSession(limiter.ActionLimit.RateLimit(roomHandler.Toggle)))
	http.HandleFunc("POST /rooms/{id}/edit", mw.WithSession(limiter.ActionLimit.RateLimit(roomHandler.Edit)))
	http.HandleFunc("POST /rooms/{id}/delete", mw.WithSession(limiter.ActionLimit.RateLimit(roomHandler.Delete)))

	http.HandleFunc("GET /reservas", mw.WithSession(limiter.ViewLimit.RateLimit(reservationHandler.Reservas)))
	http.HandleFunc("POST /reservas/create", mw.WithSession(limiter.ActionLimit.RateLimit(reservationHandler.Create)))
	http.HandleFunc("POST /reservas/{id}/edit", mw.WithSession(limiter.ActionLimit.RateLimit(reservationHandler.Edit)))
	http.HandleFunc("POST /reservas/{id}/delete", mw.WithSession(limiter.ActionLimit.RateLimit(reservationHandler.Delete)))
	http.HandleFunc("POST /reservas/{id}/estado", mw.WithSession(limiter.ActionLimit.RateLimit(reservationHandler.ChangeStatus)))

	log.Printf("✅ Server initialization complete")
	log.Printf("🌐 Server starting on port %s", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, nil))
}
