package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var scripts embed.FS

// Migrator aplica os scripts SQL embutidos no binário
type Migrator struct {
	m *migrate.Migrate
}

func New(dsn string) (*Migrator, error) {
	src, err := iofs.New(scripts, "sql")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir scripts de migração: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar para migração: %w", err)
	}

	return &Migrator{m: m}, nil
}

// Up aplica todas as migrações pendentes
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	mg.logVersion()
	return nil
}

// Down desfaz apenas a última migração aplicada
func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	mg.logVersion()
	return nil
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}

func (mg *Migrator) logVersion() {
	version, dirty, err := mg.m.Version()
	if err != nil {
		logrus.WithError(err).Info("Nenhuma migração aplicada")
		return
	}
	logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Migrações aplicadas")
}
