package db

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"sort"
)

// Migrate executes every *.sql file of fsys in lexical order. Files are
// expected to be idempotent (CREATE ... IF NOT EXISTS).
func Migrate(ctx context.Context, database DB, fsys fs.FS) error {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := database.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		log.Printf("Applied migration %s", name)
	}
	return nil
}
