package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RoomBooking/internal/config"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/migrator"
	"github.com/m04kA/SMC-RoomBooking/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|step-up|drop]",
		Short:     "Применить или откатить схему PostgreSQL",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{migrator.ActionUp, migrator.ActionDown, migrator.ActionStepUp, migrator.ActionDrop},
		RunE: func(_ *cobra.Command, args []string) error {
			action := migrator.ActionUp
			if len(args) == 1 {
				action = args[0]
			}

			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			if cfg.Storage.Backend != config.StoragePostgres {
				log.Warn("storage.backend is %q, migrations are applied to %s anyway", cfg.Storage.Backend, cfg.Database.Host)
			}

			log.Info("Running migrate %s", action)
			return migrator.New(migrations.FS, cfg.Database.URL(), log).Run(action)
		},
	}
}
