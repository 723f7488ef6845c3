package main

import (
	"context"
	"flag"
	"log"
	"os"

	"ecommerce-api/internal/config"
	"ecommerce-api/internal/db"
	"ecommerce-api/internal/importer"
	productrepo "ecommerce-api/internal/repository/product"
)

func main() {
	file := flag.String("file", "", "path to a products CSV file (name, price, stock)")
	flag.Parse()

	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if *file == "" {
		logger.Fatal("missing -file argument")
	}

	cfg := config.FromEnv()
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	repo := productrepo.NewPostgres(pool, logger)
	imported, err := importer.NewCSVImporter(f, repo).Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", imported, err)
	}

	logger.Printf("imported %d products", imported)
}
