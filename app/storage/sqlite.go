package storage

import (
	"context"
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02 15:04:05"

type SQLiteStorage struct {
	db *sql.DB
}

func getDBPath() string {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		projectDir, err := os.Getwd()
		if err != nil {
			log.Fatalf("❌ Error getting project directory: %v", err)
		}
		defaultPath := filepath.Join(projectDir, "data", "peacescape.db")
		if err := os.MkdirAll(filepath.Dir(defaultPath), os.ModePerm); err != nil {
			log.Fatalf("❌ Error creating data directory: %v", err)
		}
		log.Printf("📂 DB_PATH not set, using default: %s", defaultPath)
		return defaultPath
	}
	return dbPath
}

func NewSQLiteStorage() *SQLiteStorage {
	return NewSQLiteStorageAt(getDBPath())
}

func NewSQLiteStorageAt(dbPath string) *SQLiteStorage {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("❌ Error opening SQLite DB at %s: %v", dbPath, err)
	}

	_, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS analyses (
            id TEXT NOT NULL PRIMARY KEY,
            platform TEXT NOT NULL,
            chat_id TEXT NOT NULL,
            birth_year INTEGER NOT NULL,
            element TEXT NOT NULL,
            description TEXT NOT NULL,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        );
        CREATE INDEX IF NOT EXISTS idx_chat ON analyses (platform, chat_id);
    `)
	if err != nil {
		log.Fatalf("❌ Error creating table: %v", err)
	}

	return &SQLiteStorage{db: db}
}

func (s *SQLiteStorage) SaveAnalysis(ctx context.Context, analysis Analysis) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, platform, chat_id, birth_year, element, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, datetime(?))`,
		analysis.ID, analysis.Platform, analysis.ChatID, analysis.BirthYear,
		analysis.Element, analysis.Description, analysis.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		log.Printf("⚠️ Error saving analysis %s: %v", analysis.ID, err)
		return err
	}
	return nil
}

func (s *SQLiteStorage) RecentAnalyses(ctx context.Context, platform, chatID string, limit int) ([]Analysis, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, platform, chat_id, birth_year, element, description, created_at
		 FROM analyses
		 WHERE platform = ? AND chat_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		platform, chatID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var a Analysis
		var createdAt string
		if err = rows.Scan(&a.ID, &a.Platform, &a.ChatID, &a.BirthYear, &a.Element, &a.Description, &createdAt); err != nil {
			log.Printf("⚠️ Error scanning row for chat %s: %v", chatID, err)
			continue
		}
		a.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		analyses = append(analyses, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return analyses, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
