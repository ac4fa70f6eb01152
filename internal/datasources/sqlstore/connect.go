package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver names a supported database backend, as used in STORE_DRIVER.
type Driver string

const (
	DriverMySQL    Driver = "mysql"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// mysqlParams makes DATETIME columns scan into time.Time, and makes UPDATE
// report matched rather than changed rows so a no-op update is not mistaken
// for a missing article.
const mysqlParams = "parseTime=true&clientFoundRows=true"

// sqliteParams stores times in a format SQLite's date functions understand.
const sqliteParams = "_time_format=sqlite"

// ParseDriver converts s into a Driver.
func ParseDriver(s string) (Driver, error) {
	switch d := Driver(strings.ToLower(s)); d {
	case DriverMySQL, DriverPostgres, DriverSQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unknown store driver: %s", s)
	}
}

func (d Driver) sqlDriverName() string {
	switch d {
	case DriverPostgres:
		return "pgx"
	case DriverSQLite:
		return "sqlite"
	default:
		return "mysql"
	}
}

// Flavor is the SQL dialect queries are built in for d.
func (d Driver) Flavor() sqlbuilder.Flavor {
	switch d {
	case DriverPostgres:
		return sqlbuilder.PostgreSQL
	case DriverSQLite:
		return sqlbuilder.SQLite
	default:
		return sqlbuilder.MySQL
	}
}

func (d Driver) dataSourceName(uri string) string {
	var params string
	switch d {
	case DriverMySQL:
		params = mysqlParams
	case DriverSQLite:
		params = sqliteParams
	default:
		return uri
	}

	if strings.Contains(uri, "?") {
		return uri + "&" + params
	}
	return uri + "?" + params
}

// Connect opens and checks a connection pool for the given driver and URI.
func Connect(ctx context.Context, driver Driver, uri string) (*sql.DB, error) {
	db, err := sql.Open(driver.sqlDriverName(), driver.dataSourceName(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to %s DB: %w", driver, err)
	}

	if driver == DriverSQLite {
		// SQLite allows a single writer, and each connection to :memory: is its own database.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
	}

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking %s DB connection: %w", driver, err)
	}

	return db, nil
}
