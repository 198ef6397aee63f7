package migration

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrations embed.FS

// Up aplica todas as migrações pendentes
func Up(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(logrus.StandardLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("erro ao configurar dialeto do goose: %w", err)
	}

	if err := goose.Up(db, "sql"); err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err == nil {
		logrus.WithField("version", version).Info("Migrações aplicadas")
	}

	return nil
}
