package migrate

import (
	"github.com/hyle-team/staking-strategy-svc/internal/config"
	"github.com/hyle-team/staking-strategy-svc/internal/db"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
	"gitlab.com/distributed_lab/logan/v3"
)

func init() {
	Cmd.AddCommand(upCmd, downCmd)
}

var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Command for database migrations",
}

func execute(cfg config.Config, direction migrate.MigrationDirection) error {
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: db.Migrations,
		Root:       "migrations",
	}

	applied, err := migrate.Exec(cfg.DB().RawDB(), "postgres", source, direction)
	if err != nil {
		return err
	}

	cfg.Log().WithFields(logan.F{"applied": applied}).Info("migrations finished")

	return nil
}
