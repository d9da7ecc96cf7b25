package store

import (
	"context"
	"fmt"

	"github.com/templui/studytracker/internal/db"
)

// Options selects and configures a KV backend.
//
//	memory: nothing
//	file:   Path (directory, default ./data)
//	sqlite: DBConnection (file path with optional pragmas)
//	pgx:    DBConnection (postgres URL)
//	redis:  Redis
//	s3:     S3
type Options struct {
	Driver       Driver
	Path         string
	DBConnection string
	Redis        RedisConfig
	S3           S3Config
}

// Open returns the KV backend named by opts.Driver, default file.
func Open(ctx context.Context, opts Options) (KV, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverFile
	}

	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(opts.Path)
	case DriverSQLite, DriverPostgres:
		database, err := db.Init(string(driver), opts.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		err = db.RunMigrations(ctx, database.DB, string(driver))
		if err != nil {
			_ = db.Close(database)
			return nil, err
		}
		return NewSQL(database, driver), nil
	case DriverRedis:
		return NewRedis(ctx, opts.Redis)
	case DriverS3:
		return NewS3(ctx, opts.S3)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
