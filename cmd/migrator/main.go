package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Each service owns a private database with its own migration history.
var serviceMigrations = map[string]string{
	"orders":   "migrations/orders",
	"payments": "migrations/payments",
}

func main() {
	var service, storagePath, migrationsPath string

	flag.StringVar(&service, "service", "", "service to migrate: orders or payments")
	flag.StringVar(&storagePath, "storage-path", "", "path to storage")
	flag.StringVar(&migrationsPath, "migrations-path", "", "override the service's migrations directory")
	flag.Parse()

	if storagePath == "" {
		storagePath = os.Getenv(storageEnvName(service))
		if storagePath == "" {
			panic("empty storage path: pass -storage-path or set " + storageEnvName(service))
		}
	}

	migrationsPath, err := migrationsDir(service, migrationsPath)
	if err != nil {
		panic(err)
	}

	m, err := migrate.New(
		"file://"+migrationsPath,
		fmt.Sprintf("postgres://%s", storagePath),
	)
	if err != nil {
		panic(err)
	}

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return
		}
		panic(err)
	}
}

// migrationsDir resolves the migrations directory for a service; an explicit
// -migrations-path wins over the per-service default.
func migrationsDir(service, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	dir, ok := serviceMigrations[service]
	if !ok {
		return "", fmt.Errorf("unknown service %q: want orders or payments", service)
	}

	return dir, nil
}

// storageEnvName yields the per-service fallback variable, e.g.
// ORDERS_STORAGE_PATH for the orders service.
func storageEnvName(service string) string {
	if service == "" {
		return "STORAGE_PATH"
	}

	return strings.ToUpper(service) + "_STORAGE_PATH"
}
