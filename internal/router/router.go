package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "pet-registry/internal/adapters/storage/memory"
	pg "pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/personnel"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/visits"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier
	TokenIssuer  auth.TokenIssuer

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		petsRepo      pets.Repository
		ownersRepo    owners.Repository
		personnelRepo personnel.Repository
		visitsRepo    visits.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff).
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"err": err.Error()})
			}
		}
	}

	if db != nil {
		ownersRepo = pg.NewOwnersRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		personnelRepo = pg.NewPersonnelRepo(db)
		visitsRepo = pg.NewVisitsRepo(db)
	} else {
		ownersRepo = mem.NewOwnersRepo()
		petsRepo = mem.NewPetsRepo(ownersRepo)
		personnelRepo = mem.NewPersonnelRepo()
		visitsRepo = mem.NewVisitsRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petsRepo)
	ownersSvc := owners.NewService(ownersRepo, opts.TokenIssuer)
	personnelSvc := personnel.NewService(personnelRepo, opts.TokenIssuer)
	visitsSvc := visits.NewService(visitsRepo)

	// Rutas por módulo, todas bajo /api
	r.Route("/api", func(api chi.Router) {
		pets.RegisterRoutes(api, petsSvc, log)
		owners.RegisterRoutes(api, ownersSvc)
		personnel.RegisterRoutes(api, personnelSvc)
		visits.RegisterRoutes(api, visitsSvc)
	})

	return r
}
