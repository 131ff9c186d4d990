package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mfgplanning/pegging-loader/internal/bom"
	"github.com/mfgplanning/pegging-loader/internal/extract"
	"github.com/mfgplanning/pegging-loader/internal/loader"
	"github.com/mfgplanning/pegging-loader/internal/mapping"
	"github.com/mfgplanning/pegging-loader/internal/material"
	"github.com/mfgplanning/pegging-loader/internal/model"
	"github.com/mfgplanning/pegging-loader/internal/normalize"
	"github.com/mfgplanning/pegging-loader/internal/product"
	"github.com/mfgplanning/pegging-loader/internal/quality"
	"github.com/mfgplanning/pegging-loader/internal/resource"
	"github.com/mfgplanning/pegging-loader/internal/routing"
	"github.com/mfgplanning/pegging-loader/internal/sku"
)

// Repos bundles the per-entity repositories the loader writes through.
type Repos struct {
	Materials material.Repository
	Products  product.Repository
	SKUs      sku.Repository
	BOM       bom.Repository
	Resources resource.Repository
	Routing   routing.Repository
	Quality   quality.Repository
}

type loaderUseCase struct {
	extractor    loader.Extractor
	db           loader.Connector
	ensureSchema loader.EnsureSchemaFunc
	repos        Repos
	skuMapping   mapping.SKUMapping
	routingRules []mapping.RoutingRule
	logger       *zap.Logger
}

func NewLoaderUseCase(
	extractor loader.Extractor,
	db loader.Connector,
	ensureSchema loader.EnsureSchemaFunc,
	repos Repos,
	skuMapping mapping.SKUMapping,
	routingRules []mapping.RoutingRule,
	log *zap.Logger,
) loader.UseCase {
	return &loaderUseCase{
		extractor:    extractor,
		db:           db,
		ensureSchema: ensureSchema,
		repos:        repos,
		skuMapping:   skuMapping,
		routingRules: routingRules,
		logger:       log,
	}
}

// Run executes one full load: extract, connect, ensure schema, then the six
// entity batches. Master-data batches upsert; BOM edges append. A failing
// batch is logged and skipped, later batches still run.
func (uc *loaderUseCase) Run(ctx context.Context, opts loader.RunOptions) (*loader.RunReport, error) {
	report := &loader.RunReport{
		RunID:  uuid.New().String(),
		DryRun: opts.DryRun,
	}
	log := uc.logger.With(zap.String("run_id", report.RunID))

	log.Info("starting material pegging load",
		zap.String("dp_workbook", opts.DPWorkbook),
		zap.String("snp_workbook", opts.SNPWorkbook),
		zap.Bool("dry_run", opts.DryRun))

	res, err := uc.extractor.Run(opts.DPWorkbook, opts.SNPWorkbook)
	if err != nil {
		return report, fmt.Errorf("extraction failed: %w", err)
	}
	report.ProductsExtracted = len(res.Products)
	report.MaterialsExtracted = len(res.Materials)
	report.SKUsExtracted = len(res.SKUs)

	if opts.DryRun {
		log.Info("dry run, skipping database load")
		return report, nil
	}

	if err := uc.db.Connect(ctx); err != nil {
		return report, fmt.Errorf("database connection failed: %w", err)
	}
	defer uc.db.Close()

	if err := uc.ensureSchema(ctx, uc.db.DB()); err != nil {
		return report, fmt.Errorf("schema setup failed: %w", err)
	}

	issues := uc.loadBatches(ctx, res, report, log)

	if n, err := uc.repos.Quality.InsertIssues(ctx, issues); err != nil {
		log.Error("quality log batch failed", zap.Error(err))
		report.FailedBatches = append(report.FailedBatches, "data_quality_log")
	} else {
		report.IssueRows = n
	}

	log.Info("material pegging load complete",
		zap.Int64("materials", report.MaterialRows),
		zap.Int64("products", report.ProductRows),
		zap.Int64("skus", report.SKURows),
		zap.Int64("bom_edges", report.EdgeRows),
		zap.Int64("resources", report.ResourceRows),
		zap.Int64("routing_rules", report.RuleRows),
		zap.Int64("quality_issues", report.IssueRows),
		zap.Strings("failed_batches", report.FailedBatches))
	return report, nil
}

func (uc *loaderUseCase) loadBatches(ctx context.Context, res *extract.Result, report *loader.RunReport, log *zap.Logger) []model.QualityIssue {
	if n, err := uc.repos.Materials.UpsertBatch(ctx, buildMaterials(res)); err != nil {
		log.Error("materials batch failed", zap.Error(err))
		report.FailedBatches = append(report.FailedBatches, "materials")
	} else {
		report.MaterialRows = n
		log.Info("materials loaded", zap.Int64("rows", n))
	}

	if n, err := uc.repos.Products.UpsertBatch(ctx, buildProducts(res)); err != nil {
		log.Error("products batch failed", zap.Error(err))
		report.FailedBatches = append(report.FailedBatches, "products")
	} else {
		report.ProductRows = n
		log.Info("products loaded", zap.Int64("rows", n))
	}

	if n, err := uc.repos.SKUs.UpsertBatch(ctx, uc.buildSKUs(res)); err != nil {
		log.Error("skus batch failed", zap.Error(err))
		report.FailedBatches = append(report.FailedBatches, "skus")
	} else {
		report.SKURows = n
		log.Info("skus loaded", zap.Int64("rows", n))
	}

	edges, issues := uc.buildEdges(res, report.RunID)
	if n, err := uc.repos.BOM.InsertBatch(ctx, edges); err != nil {
		log.Error("bom hierarchy batch failed", zap.Error(err))
		report.FailedBatches = append(report.FailedBatches, "bom_hierarchy")
	} else {
		report.EdgeRows = n
		log.Info("bom hierarchy loaded", zap.Int64("rows", n))
	}

	if n, err := uc.repos.Resources.UpsertBatch(ctx, buildResources(res)); err != nil {
		log.Error("resources batch failed", zap.Error(err))
		report.FailedBatches = append(report.FailedBatches, "resources")
	} else {
		report.ResourceRows = n
		log.Info("resources loaded", zap.Int64("rows", n))
	}

	if n, err := uc.repos.Routing.UpsertBatch(ctx, uc.buildRoutingRules()); err != nil {
		log.Error("routing rules batch failed", zap.Error(err))
		report.FailedBatches = append(report.FailedBatches, "routing_rules")
	} else {
		report.RuleRows = n
		log.Info("routing rules loaded", zap.Int64("rows", n))
	}

	return issues
}

func buildMaterials(res *extract.Result) []model.Material {
	out := make([]model.Material, 0, len(res.Materials))
	for _, m := range res.Materials {
		out = append(out, model.Material{
			MaterialID:   m.Code,
			MaterialCode: m.Code,
			Description:  strPtr(m.Description),
			Section:      strPtr(m.Section),
			CommonUnique: strPtr(m.CommonUnique),
			LeadTimeWks:  normalize.Float(m.RawLeadTime),
			BUoM:         strPtr(m.BUoM),
			Model:        strPtr(m.Model),
		})
	}
	return out
}

func buildProducts(res *extract.Result) []model.Product {
	out := make([]model.Product, 0, len(res.Products))
	for _, p := range res.Products {
		out = append(out, model.Product{
			ProductID:      p.ProductID,
			ProductCode:    p.ProductID,
			Description:    strPtr(p.Description),
			HierarchyLevel: model.DeriveHierarchyLevel(p.ProductID),
			BOMType:        "Standard",
			BatchSize:      normalize.TextPtr(p.BatchSize),
		})
	}
	return out
}

func (uc *loaderUseCase) buildSKUs(res *extract.Result) []model.SKU {
	out := make([]model.SKU, 0, len(res.SKUOrder))
	for _, code := range res.SKUOrder {
		rec := res.SKUs[code]
		s := model.SKU{
			SKUID:       code,
			SKUCode:     code,
			Description: strPtr(rec.SKU),
			PackSize:    normalize.TextPtr(rec.PackSize),
			Country:     strPtr(rec.Country),
		}
		if entry, ok := uc.skuMapping[code]; ok {
			s.ProductFamily = strPtr(entry.Family)
			s.AssemblyProductID = strPtr(entry.Assembly)
			s.FillingProductID = strPtr(entry.Filling)
		}
		out = append(out, s)
	}
	return out
}

// buildEdges turns pegging records into hierarchy rows. Invalid non-blank
// quantities persist as 0 on the edge and are additionally recorded in the
// data-quality log.
func (uc *loaderUseCase) buildEdges(res *extract.Result, runID string) ([]model.BOMEdge, []model.QualityIssue) {
	records := extract.BuildPeggingRecords(res, uc.resolveSKU)

	edges := make([]model.BOMEdge, 0, len(records))
	var issues []model.QualityIssue
	for _, rec := range records {
		if !normalize.IsValidQty(rec.RawQty) {
			issues = append(issues, model.QualityIssue{
				RunID:       runID,
				CheckType:   "invalid_quantity",
				EntityType:  "bom_edge",
				EntityID:    rec.ProductID + "/" + rec.MaterialID,
				Description: fmt.Sprintf("quantity %q coerced to 0", rec.RawQty),
				Severity:    model.SeverityWarning,
				Status:      model.QualityStatusOpen,
			})
		}
		edges = append(edges, model.BOMEdge{
			SKUID:        rec.SKU,
			Level:        model.LevelFromTag(rec.LevelTag),
			ProductID:    rec.ProductID,
			ProductDesc:  strPtr(rec.ProductDesc),
			MaterialID:   rec.MaterialID,
			MaterialDesc: strPtr(rec.MaterialDesc),
			Quantity:     normalize.Qty(rec.RawQty),
			Section:      strPtr(rec.Section),
			CommonUnique: strPtr(rec.CommonUnique),
			BUoM:         strPtr(rec.BUoM),
			LeadTimeWks:  normalize.Float(rec.RawLeadTime),
			ResourceID:   strPtr(rec.ResourceID),
			ResourceDesc: strPtr(rec.ResourceDesc),
		})
	}
	return edges, issues
}

// resolveSKU maps a product code to the market SKU owning it. Packing-level
// products are their own SKU; assembly/filling products resolve through the
// hierarchy mapping and fall back to themselves when unmapped.
func (uc *loaderUseCase) resolveSKU(productID string) string {
	if model.DeriveHierarchyLevel(productID) == model.HierarchyPacking {
		return productID
	}
	if owner := uc.skuMapping.OwnerOf(productID); owner != "" {
		return owner
	}
	return productID
}

func buildResources(res *extract.Result) []model.Resource {
	codes := make([]string, 0, len(res.Resources))
	for code := range res.Resources {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var out []model.Resource
	for _, code := range codes {
		rec := res.Resources[code]
		if rec.ResourceID == "" {
			continue
		}
		productID := code
		out = append(out, model.Resource{
			ResourceID:  rec.ResourceID,
			Description: strPtr(rec.Description),
			ProductID:   &productID,
			Stage:       model.DeriveResourceStage(code),
		})
	}
	return out
}

func (uc *loaderUseCase) buildRoutingRules() []model.RoutingRule {
	out := make([]model.RoutingRule, 0, len(uc.routingRules))
	for _, r := range uc.routingRules {
		priority := r.Priority
		if priority == 0 {
			priority = 1
		}
		out = append(out, model.RoutingRule{
			RuleID:      r.RuleID,
			Description: r.Description,
			ResourceID:  r.Resource,
			RuleType:    r.Type,
			Stage:       r.Stage,
			Priority:    priority,
			IsActive:    true,
		})
	}
	return out
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
