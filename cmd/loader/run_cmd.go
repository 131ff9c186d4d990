package main

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mfgplanning/pegging-loader/config"
	bomrepo "github.com/mfgplanning/pegging-loader/internal/bom/repository"
	"github.com/mfgplanning/pegging-loader/internal/database"
	"github.com/mfgplanning/pegging-loader/internal/extract"
	"github.com/mfgplanning/pegging-loader/internal/loader"
	loaderuc "github.com/mfgplanning/pegging-loader/internal/loader/usecase"
	"github.com/mfgplanning/pegging-loader/internal/mapping"
	materialrepo "github.com/mfgplanning/pegging-loader/internal/material/repository"
	productrepo "github.com/mfgplanning/pegging-loader/internal/product/repository"
	qualityrepo "github.com/mfgplanning/pegging-loader/internal/quality/repository"
	resourcerepo "github.com/mfgplanning/pegging-loader/internal/resource/repository"
	routingrepo "github.com/mfgplanning/pegging-loader/internal/routing/repository"
	"github.com/mfgplanning/pegging-loader/internal/schema"
	skurepo "github.com/mfgplanning/pegging-loader/internal/sku/repository"
)

type runOptions struct {
	dpWorkbook   string
	snpWorkbook  string
	layoutFile   string
	skuMapping   string
	routingRules string
	dryRun       bool
}

func newRunCmd(cfg *config.Config, log *zap.Logger) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one extract-and-load pass over the planning workbooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd.Context(), cfg, log, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dpWorkbook, "dp", cfg.Files.DPWorkbook, "DP material shortage workbook path")
	cmd.Flags().StringVar(&opts.snpWorkbook, "snp", cfg.Files.SNPWorkbook, "SNP workbook path")
	cmd.Flags().StringVar(&opts.layoutFile, "layout", cfg.Files.Layout, "Workbook layout descriptor (YAML)")
	cmd.Flags().StringVar(&opts.skuMapping, "sku-mapping", cfg.Files.SKUMapping, "SKU hierarchy mapping file (YAML)")
	cmd.Flags().StringVar(&opts.routingRules, "routing-rules", cfg.Files.RoutingRules, "Routing rules file (YAML)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Extract and report counts without touching the database")

	return cmd
}

func runLoad(ctx context.Context, cfg *config.Config, log *zap.Logger, opts runOptions) error {
	layout, err := extract.LoadLayout(opts.layoutFile)
	if err != nil {
		return err
	}
	skuMapping, err := mapping.LoadSKUMapping(opts.skuMapping)
	if err != nil {
		return err
	}
	routingRules, err := mapping.LoadRoutingRules(opts.routingRules)
	if err != nil {
		return err
	}

	client := database.NewClient(database.Config{
		Host:            cfg.MySQL.Host,
		Port:            cfg.MySQL.Port,
		User:            cfg.MySQL.User,
		Password:        cfg.MySQL.Password,
		DBName:          cfg.MySQL.DBName,
		MaxOpenConns:    cfg.MySQL.MaxOpenConns,
		MaxIdleConns:    cfg.MySQL.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.MySQL.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.MySQL.ConnMaxIdleTime) * time.Second,
	}, log)

	uc := loaderuc.NewLoaderUseCase(
		extract.New(layout, log),
		client,
		func(ctx context.Context, db *sqlx.DB) error { return schema.Ensure(ctx, db, log) },
		loaderuc.Repos{
			Materials: materialrepo.NewMySQLRepository(client),
			Products:  productrepo.NewMySQLRepository(client),
			SKUs:      skurepo.NewMySQLRepository(client),
			BOM:       bomrepo.NewMySQLRepository(client),
			Resources: resourcerepo.NewMySQLRepository(client),
			Routing:   routingrepo.NewMySQLRepository(client),
			Quality:   qualityrepo.NewMySQLRepository(client),
		},
		skuMapping,
		routingRules,
		log,
	)

	_, err = uc.Run(ctx, loader.RunOptions{
		DPWorkbook:  opts.dpWorkbook,
		SNPWorkbook: opts.snpWorkbook,
		DryRun:      opts.dryRun,
	})
	return err
}
