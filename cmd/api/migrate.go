package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica ou desfaz as migrações do banco",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica todas as migrações pendentes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(mg *migration.Migrator) error {
			return mg.Up()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Desfaz a última migração aplicada",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(mg *migration.Migrator) error {
			return mg.Down()
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

func withMigrator(fn func(mg *migration.Migrator) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mg, err := migration.New(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := mg.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar o migrador")
		}
	}()

	if err := fn(mg); err != nil {
		return err
	}

	logrus.Info("Migrações concluídas com sucesso")
	return nil
}
