package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
)

const articlesTable = "saved_articles"

type columnTypes struct {
	float     string
	timestamp string
}

func typesFor(flavor sqlbuilder.Flavor) columnTypes {
	switch flavor {
	case sqlbuilder.PostgreSQL:
		return columnTypes{float: "DOUBLE PRECISION", timestamp: "TIMESTAMPTZ"}
	case sqlbuilder.SQLite:
		return columnTypes{float: "REAL", timestamp: "DATETIME"}
	default:
		return columnTypes{float: "DOUBLE", timestamp: "DATETIME(6)"}
	}
}

// Migrate creates the saved articles table and its owner index if missing.
func Migrate(ctx context.Context, db *sql.DB, flavor sqlbuilder.Flavor) error {
	types := typesFor(flavor)

	ctb := flavor.NewCreateTableBuilder()
	ctb.CreateTable(articlesTable).IfNotExists()
	ctb.Define("id", "VARCHAR(64)", "NOT NULL")
	ctb.Define("user_id", "VARCHAR(64)", "NOT NULL")
	ctb.Define("url", "TEXT", "NOT NULL")
	ctb.Define("note_id", "VARCHAR(255)", "NOT NULL")
	ctb.Define("title", "TEXT", "NOT NULL")
	ctb.Define("excerpt", "TEXT", "NOT NULL")
	ctb.Define("cover_image_url", "TEXT", "NOT NULL")
	ctb.Define("creator_urlname", "VARCHAR(255)", "NOT NULL")
	ctb.Define("creator_nickname", "VARCHAR(255)", "NOT NULL")
	ctb.Define("creator_profile_image_url", "TEXT", "NOT NULL")
	ctb.Define("hashtags", "TEXT", "NOT NULL")
	ctb.Define("is_paid", "BOOLEAN", "NOT NULL")
	ctb.Define("word_count", "INTEGER", "NOT NULL")
	ctb.Define("reading_time_minutes", "INTEGER", "NOT NULL")
	ctb.Define("like_count", "INTEGER", "NOT NULL")
	ctb.Define("status", "VARCHAR(16)", "NOT NULL")
	ctb.Define("progress", types.float, "NOT NULL")
	ctb.Define("memo", "TEXT", "NOT NULL")
	ctb.Define("saved_at", types.timestamp, "NOT NULL")
	ctb.Define("read_at", types.timestamp, "NULL")
	ctb.Define("updated_at", types.timestamp, "NOT NULL")
	ctb.Define("freshness_score", types.float, "NOT NULL")
	ctb.Define("priority", types.float, "NOT NULL")
	ctb.Define("expiry_score", types.float, "NOT NULL")
	ctb.Define("PRIMARY KEY (id)")
	if flavor == sqlbuilder.MySQL {
		// MySQL has no CREATE INDEX IF NOT EXISTS, so the index is part of the table.
		ctb.Define("INDEX saved_articles_owner (user_id, saved_at)")
	}

	query, args := ctb.Build()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("creating %s table: %w", articlesTable, err)
	}

	if flavor != sqlbuilder.MySQL {
		_, err := db.ExecContext(ctx,
			"CREATE INDEX IF NOT EXISTS saved_articles_owner ON "+articlesTable+" (user_id, saved_at)")
		if err != nil {
			return fmt.Errorf("creating %s owner index: %w", articlesTable, err)
		}
	}

	return nil
}
