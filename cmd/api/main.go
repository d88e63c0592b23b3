package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"

	_ "pet-registry/docs"
	"pet-registry/internal/adapters/auth/jwtauth"
	"pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/router"
)

type config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// AUTH_SECRET firma y verifica los bearer tokens. Sin secreto no
	// hay arranque: no existe fallback silencioso.
	AuthSecret string `env:"AUTH_SECRET,required"`

	// DBDSN opcional: Postgres si viene, in-memory si no.
	DBDSN string `env:"DB_DSN"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog := logger.NewFromEnv()

	verifier, err := jwtauth.NewVerifier(cfg.AuthSecret)
	if err != nil {
		log.Fatalf("init verifier: %v", err)
	}
	issuer, err := jwtauth.NewIssuer(cfg.AuthSecret)
	if err != nil {
		log.Fatalf("init issuer: %v", err)
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		defer db.Close()
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		TokenIssuer:  issuer,
		DB:           db,
		Logger:       appLog,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{"addr": srv.Addr, "storage": storageMode(db)})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func storageMode(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}
