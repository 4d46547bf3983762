package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, dir+"/*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("no migrations embedded")
	}

	b, err := fs.ReadFile(FS, files[0])
	if err != nil {
		t.Fatalf("read %s: %v", files[0], err)
	}
	sql := string(b)
	mustHave := []string{
		"-- +goose Up",
		"-- +goose Down",
		"CREATE TABLE IF NOT EXISTS moods",
		"UNIQUE (mood_date)",
		"CHECK (rating BETWEEN 1 AND 10)",
	}
	for _, m := range mustHave {
		if !strings.Contains(sql, m) {
			t.Fatalf("migration %s does not contain %q", files[0], m)
		}
	}
}
