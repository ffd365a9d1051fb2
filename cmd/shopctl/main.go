package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopfront/internal/app"
	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/seed"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		logger.Errorw("shopctl_failed", "error", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "shopctl",
		Usage: "shopfront maintenance commands",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config.yml",
				Sources: cli.EnvVars("SHOPFRONT_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if _, err := openDatabase(cmd); err != nil {
						return err
					}
					if err := models.AutoMigrate(); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
					logger.Infow("shopctl_migrate_completed")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Create the default admin and demo catalog (safe to re-run)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := openDatabase(cmd)
					if err != nil {
						return err
					}
					if err := models.AutoMigrate(); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
					result, err := seed.NewSeeder(cfg, models.DB).Run(ctx)
					if err != nil {
						return fmt.Errorf("seed: %w", err)
					}
					fmt.Fprintf(cmd.Root().Writer, "admin created: %t, categories: %d, products: %d\n",
						result.AdminCreated, result.CategoriesCreated, result.ProductsCreated)
					return nil
				},
			},
			{
				Name:  "create-admin",
				Usage: "Create an admin account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := openDatabase(cmd)
					if err != nil {
						return err
					}
					user, err := seed.NewSeeder(cfg, models.DB).CreateAdmin(
						cmd.String("username"),
						cmd.String("email"),
						cmd.String("password"),
					)
					if err != nil {
						return fmt.Errorf("create admin: %w", err)
					}
					fmt.Fprintf(cmd.Root().Writer, "admin %s (%s) created with id %d\n", user.Username, user.Email, user.ID)
					return nil
				},
			},
		},
	}
}

func openDatabase(cmd *cli.Command) (*config.Config, error) {
	cfg := config.LoadFrom(cmd.String("config"))
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	if err := app.OpenDatabase(cfg); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, nil
}
