package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mfgplanning/pegging-loader/internal/extract"
	"github.com/mfgplanning/pegging-loader/internal/loader"
	"github.com/mfgplanning/pegging-loader/internal/mapping"
	"github.com/mfgplanning/pegging-loader/internal/model"
)

type fakeExtractor struct {
	res *extract.Result
	err error
}

func (f *fakeExtractor) Run(dpPath, snpPath string) (*extract.Result, error) {
	return f.res, f.err
}

type fakeConnector struct {
	connectErr error
	connects   int
	closes     int
}

func (f *fakeConnector) Connect(ctx context.Context) error {
	if f.connectErr != nil {
		return f.connectErr
	}
	f.connects++
	return nil
}

func (f *fakeConnector) Close() error { f.closes++; return nil }
func (f *fakeConnector) DB() *sqlx.DB { return nil }

type fakeMaterialRepo struct {
	got []model.Material
	err error
}

func (f *fakeMaterialRepo) UpsertBatch(ctx context.Context, materials []model.Material) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.got = materials
	return int64(len(materials)), nil
}

type fakeProductRepo struct{ got []model.Product }

func (f *fakeProductRepo) UpsertBatch(ctx context.Context, products []model.Product) (int64, error) {
	f.got = products
	return int64(len(products)), nil
}

type fakeSKURepo struct{ got []model.SKU }

func (f *fakeSKURepo) UpsertBatch(ctx context.Context, skus []model.SKU) (int64, error) {
	f.got = skus
	return int64(len(skus)), nil
}

type fakeBOMRepo struct{ got []model.BOMEdge }

func (f *fakeBOMRepo) InsertBatch(ctx context.Context, edges []model.BOMEdge) (int64, error) {
	f.got = append(f.got, edges...)
	return int64(len(edges)), nil
}

type fakeResourceRepo struct{ got []model.Resource }

func (f *fakeResourceRepo) UpsertBatch(ctx context.Context, resources []model.Resource) (int64, error) {
	f.got = resources
	return int64(len(resources)), nil
}

type fakeRoutingRepo struct{ got []model.RoutingRule }

func (f *fakeRoutingRepo) UpsertBatch(ctx context.Context, rules []model.RoutingRule) (int64, error) {
	f.got = rules
	return int64(len(rules)), nil
}

type fakeQualityRepo struct {
	issues []model.QualityIssue
	audit  []model.AuditEntry
}

func (f *fakeQualityRepo) InsertIssues(ctx context.Context, issues []model.QualityIssue) (int64, error) {
	f.issues = issues
	return int64(len(issues)), nil
}

func (f *fakeQualityRepo) InsertAudit(ctx context.Context, entries []model.AuditEntry) (int64, error) {
	f.audit = entries
	return int64(len(entries)), nil
}

func fixtureResult() *extract.Result {
	return &extract.Result{
		Products: []extract.ProductHeader{
			{ProductID: "800004403", Description: "Pack A", BatchSize: "100", ColumnOffset: 0},
			{ProductID: "700003964", Description: "Asm B", ColumnOffset: 1},
		},
		Materials: []extract.MaterialRow{
			{Code: "MAT001", Description: "Material One", RawLeadTime: "4.5", RowOffset: 0},
			{Code: "MAT2", Description: "Material Two", RawLeadTime: "n/a", RowOffset: 1},
		},
		Quantities: [][]string{
			{"2.5", ""},
			{"-1", "3"},
		},
		SKUs: map[string]extract.SKURecord{
			"800004403": {ProductCode: "800004403", SKU: "Glargine 100IU Cartridge", Country: "India", PackSize: "10"},
		},
		SKUOrder: []string{"800004403"},
		Resources: map[string]extract.ResourceRecord{
			"700003964": {ResourceID: "LINE02", Description: "Assembly Line 2"},
		},
	}
}

func fixtureMapping() mapping.SKUMapping {
	return mapping.SKUMapping{
		"800004403": {Assembly: "700003964", Filling: "700001012", Family: "Glargine_mCB_DLP"},
	}
}

type fixture struct {
	extractor *fakeExtractor
	conn      *fakeConnector
	materials *fakeMaterialRepo
	products  *fakeProductRepo
	skus      *fakeSKURepo
	bom       *fakeBOMRepo
	resources *fakeResourceRepo
	routing   *fakeRoutingRepo
	quality   *fakeQualityRepo
	uc        loader.UseCase
}

func newFixture(rules []mapping.RoutingRule) *fixture {
	f := &fixture{
		extractor: &fakeExtractor{res: fixtureResult()},
		conn:      &fakeConnector{},
		materials: &fakeMaterialRepo{},
		products:  &fakeProductRepo{},
		skus:      &fakeSKURepo{},
		bom:       &fakeBOMRepo{},
		resources: &fakeResourceRepo{},
		routing:   &fakeRoutingRepo{},
		quality:   &fakeQualityRepo{},
	}
	f.uc = NewLoaderUseCase(
		f.extractor,
		f.conn,
		func(ctx context.Context, db *sqlx.DB) error { return nil },
		Repos{
			Materials: f.materials,
			Products:  f.products,
			SKUs:      f.skus,
			BOM:       f.bom,
			Resources: f.resources,
			Routing:   f.routing,
			Quality:   f.quality,
		},
		fixtureMapping(),
		rules,
		zap.NewNop(),
	)
	return f
}

func TestRunLoadsAllBatches(t *testing.T) {
	rules := []mapping.RoutingRule{
		{RuleID: "C1", Description: "Pack 1/10 -> Manual Pack", Resource: "MFMPPL012702001", Type: "Low volume", Stage: "Packing"},
	}
	f := newFixture(rules)

	report, err := f.uc.Run(context.Background(), loader.RunOptions{DPWorkbook: "dp.xlsx", SNPWorkbook: "snp.xlsx"})
	require.NoError(t, err)
	require.NotEmpty(t, report.RunID)
	assert.Empty(t, report.FailedBatches)

	assert.Equal(t, 2, report.ProductsExtracted)
	assert.Equal(t, 2, report.MaterialsExtracted)
	assert.Equal(t, 1, report.SKUsExtracted)

	assert.Equal(t, int64(2), report.MaterialRows)
	assert.Equal(t, int64(2), report.ProductRows)
	assert.Equal(t, int64(1), report.SKURows)
	assert.Equal(t, int64(3), report.EdgeRows)
	assert.Equal(t, int64(1), report.ResourceRows)
	assert.Equal(t, int64(1), report.RuleRows)
	assert.Equal(t, int64(1), report.IssueRows)

	assert.Equal(t, 1, f.conn.connects)
	assert.Equal(t, 1, f.conn.closes)

	require.Len(t, f.materials.got, 2)
	require.NotNil(t, f.materials.got[0].LeadTimeWks)
	assert.InDelta(t, 4.5, *f.materials.got[0].LeadTimeWks, 1e-9)
	assert.Nil(t, f.materials.got[1].LeadTimeWks)

	require.Len(t, f.products.got, 2)
	assert.Equal(t, model.HierarchyPacking, f.products.got[0].HierarchyLevel)
	assert.Equal(t, model.HierarchyAssembly, f.products.got[1].HierarchyLevel)

	require.Len(t, f.skus.got, 1)
	require.NotNil(t, f.skus.got[0].AssemblyProductID)
	assert.Equal(t, "700003964", *f.skus.got[0].AssemblyProductID)
	require.NotNil(t, f.skus.got[0].FillingProductID)
	assert.Equal(t, "700001012", *f.skus.got[0].FillingProductID)

	require.Len(t, f.resources.got, 1)
	assert.Equal(t, "LINE02", f.resources.got[0].ResourceID)
	assert.Equal(t, model.StageAssembly, f.resources.got[0].Stage)

	require.Len(t, f.routing.got, 1)
	assert.Equal(t, 1, f.routing.got[0].Priority)
	assert.True(t, f.routing.got[0].IsActive)
}

func TestRunBuildsEdgesAndFlagsInvalidQuantities(t *testing.T) {
	f := newFixture(nil)

	report, err := f.uc.Run(context.Background(), loader.RunOptions{})
	require.NoError(t, err)

	require.Len(t, f.bom.got, 3)

	first := f.bom.got[0]
	assert.Equal(t, "800004403", first.SKUID)
	assert.Equal(t, 1, first.Level)
	assert.Equal(t, "MAT001", first.MaterialID)
	assert.InDelta(t, 2.5, first.Quantity, 1e-9)

	// The "-1" cell keeps its edge at quantity 0 and lands in the quality log.
	second := f.bom.got[1]
	assert.Equal(t, "MAT2", second.MaterialID)
	assert.Zero(t, second.Quantity)

	// Assembly product resolves to the market SKU that owns it.
	third := f.bom.got[2]
	assert.Equal(t, "700003964", third.ProductID)
	assert.Equal(t, "800004403", third.SKUID)
	assert.Equal(t, 2, third.Level)
	require.NotNil(t, third.ResourceID)
	assert.Equal(t, "LINE02", *third.ResourceID)

	require.Len(t, f.quality.issues, 1)
	issue := f.quality.issues[0]
	assert.Equal(t, report.RunID, issue.RunID)
	assert.Equal(t, "invalid_quantity", issue.CheckType)
	assert.Equal(t, "800004403/MAT2", issue.EntityID)
	assert.Equal(t, model.SeverityWarning, issue.Severity)
	assert.Equal(t, model.QualityStatusOpen, issue.Status)
}

func TestRunDryRunSkipsDatabase(t *testing.T) {
	f := newFixture(nil)

	report, err := f.uc.Run(context.Background(), loader.RunOptions{DryRun: true})
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.ProductsExtracted)
	assert.Zero(t, f.conn.connects)
	assert.Empty(t, f.materials.got)
	assert.Empty(t, f.bom.got)
}

func TestRunExtractionFailureIsFatal(t *testing.T) {
	f := newFixture(nil)
	f.extractor.err = errors.New("workbook corrupt")

	_, err := f.uc.Run(context.Background(), loader.RunOptions{})
	assert.ErrorContains(t, err, "extraction failed")
	assert.Zero(t, f.conn.connects)
}

func TestRunConnectFailureIsFatal(t *testing.T) {
	f := newFixture(nil)
	f.conn.connectErr = errors.New("dial tcp: refused")

	_, err := f.uc.Run(context.Background(), loader.RunOptions{})
	assert.ErrorContains(t, err, "database connection failed")
	assert.Empty(t, f.materials.got)
}

func TestRunContinuesAfterBatchFailure(t *testing.T) {
	f := newFixture(nil)
	f.materials.err = errors.New("lock wait timeout")

	report, err := f.uc.Run(context.Background(), loader.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"materials"}, report.FailedBatches)
	assert.Zero(t, report.MaterialRows)
	assert.Equal(t, int64(2), report.ProductRows)
	assert.Equal(t, int64(3), report.EdgeRows)
	require.Len(t, f.quality.issues, 1)
}
