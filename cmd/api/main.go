package main

import (
	"errors"
	"log"

	"pia-backend/internal/assessment/catalog"
	"pia-backend/internal/shared/config"
	"pia-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("catalog load error: %v", err)
	}

	r := server.NewRouter(cfg, cat)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (%d catalog tools)", addr, cat.Len())

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// loadCatalog uses the built-in catalog unless CATALOG_PATH points at an
// override file. An explicitly configured path that cannot be loaded is
// fatal rather than silently ignored.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.BuiltIn(), nil
	}
	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogNotFound) {
			log.Printf("catalog file %s not found", cfg.CatalogPath)
		}
		return nil, err
	}
	return cat, nil
}
