package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/ecolvin/tracelink-api/pkg/config"
)

func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", "./migrations", "directorio de migraciones")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("abrir db: %v", err)
	}
	defer db.Close()

	if err := goose.Up(db, *dir); err != nil {
		log.Fatalf("goose up: %v", err)
	}
	log.Println("migraciones aplicadas")
}
