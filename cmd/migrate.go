package main

import (
	"github.com/muhammadheryan/promo-admin/repository/schema"
	"github.com/muhammadheryan/promo-admin/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the product and rule tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connectDB(cfg)
		if err != nil {
			logger.Error("err connect db", zap.Error(err))
			return err
		}
		defer db.Close()

		if err := schema.Migrate(cmd.Context(), db); err != nil {
			logger.Error("err migrate", zap.Error(err))
			return err
		}
		logger.Info("migration done")
		return nil
	},
}
