// Package extract reads the fixed regions of the DP-shortage and SNP
// workbooks into normalized in-memory structures. It filters nothing beyond
// the single rule that rows with an absent or literal-"0" identifier are
// dropped; all other validation happens at load time.
package extract

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mfgplanning/pegging-loader/internal/normalize"
)

// ProductHeader is one product column of the DP-shortage header band.
type ProductHeader struct {
	ProductID    string
	Description  string
	BatchSize    string
	ColumnOffset int // 0-based offset into the quantity matrix
}

// MaterialRow is one row of the materials band. Field values are normalized
// text but otherwise unvalidated; RawLeadTime stays raw for the load stage to
// coerce.
type MaterialRow struct {
	Code         string
	Description  string
	Model        string
	Family       string
	Section      string
	CommonUnique string
	BUoM         string
	RawLeadTime  string
	RowOffset    int // 0-based offset into the quantity matrix
}

// SKURecord is one row of the SNP SKU master sheet, keyed by the normalized
// product code it was found under.
type SKURecord struct {
	ProductCode string
	SKU         string
	Country     string
	PackSize    string
}

// ResourceRecord maps one product code to a production resource.
type ResourceRecord struct {
	ResourceID  string
	Description string
}

// Result is everything the load stage needs from the two workbooks.
type Result struct {
	Products   []ProductHeader
	Materials  []MaterialRow
	Quantities [][]string
	SKUs       map[string]SKURecord
	SKUOrder   []string
	Resources  map[string]ResourceRecord
}

type Extractor struct {
	layout *Layout
	log    *zap.Logger
}

func New(layout *Layout, log *zap.Logger) *Extractor {
	return &Extractor{layout: layout, log: log}
}

// Run reads both workbooks. A failure in the DP-shortage regions is fatal;
// the two SNP sheets are read defensively and degrade to empty sets with a
// warning.
func (e *Extractor) Run(dpPath, snpPath string) (*Result, error) {
	dp, err := OpenWorkbook(dpPath)
	if err != nil {
		return nil, err
	}
	defer dp.Close()

	res := &Result{
		SKUs:      map[string]SKURecord{},
		Resources: map[string]ResourceRecord{},
	}

	if res.Products, err = e.productHeaders(dp); err != nil {
		return nil, err
	}
	if res.Materials, err = e.materials(dp); err != nil {
		return nil, err
	}
	if res.Quantities, err = dp.Matrix(e.layout.Quantities); err != nil {
		return nil, fmt.Errorf("read quantity matrix: %w", err)
	}

	snp, err := OpenWorkbook(snpPath)
	if err != nil {
		e.log.Warn("SNP workbook unavailable, SKU and resource data treated as empty",
			zap.String("path", snpPath), zap.Error(err))
	} else {
		defer snp.Close()
		e.skus(snp, res)
		e.resources(snp, res)
	}

	e.log.Info("extraction complete",
		zap.Int("products", len(res.Products)),
		zap.Int("materials", len(res.Materials)),
		zap.Int("skus", len(res.SKUs)),
		zap.Int("resources", len(res.Resources)))
	return res, nil
}

func (e *Extractor) productHeaders(dp *Workbook) ([]ProductHeader, error) {
	band := e.layout.ProductHeader
	grid, err := dp.Matrix(band)
	if err != nil {
		return nil, fmt.Errorf("read product header band: %w", err)
	}

	codeRow := band.RoleRows["code"]
	descRow := band.RoleRows["description"]
	batchRow := band.RoleRows["batch_size"]

	var headers []ProductHeader
	index := map[string]int{}
	for c := 0; c < band.Cols; c++ {
		code, ok := normalize.Code(grid[codeRow][c])
		if !ok || code == "0" {
			continue
		}
		desc, _ := normalize.Text(grid[descRow][c])
		h := ProductHeader{
			ProductID:    code,
			Description:  desc,
			BatchSize:    grid[batchRow][c],
			ColumnOffset: c,
		}
		// A repeated product column replaces the earlier one in place, so
		// the rightmost occurrence supplies the quantities.
		if i, dup := index[code]; dup {
			headers[i] = h
			continue
		}
		index[code] = len(headers)
		headers = append(headers, h)
	}
	return headers, nil
}

func (e *Extractor) materials(dp *Workbook) ([]MaterialRow, error) {
	recs, err := dp.Records(e.layout.Materials)
	if err != nil {
		return nil, fmt.Errorf("read materials band: %w", err)
	}

	var rows []MaterialRow
	for i, rec := range recs {
		code, ok := normalize.Code(rec["code"])
		if !ok || code == "0" {
			continue
		}
		row := MaterialRow{Code: code, RawLeadTime: rec["lead_time"], RowOffset: i}
		row.Description, _ = normalize.Text(rec["description"])
		row.Model, _ = normalize.Model(rec["model"])
		row.Family, _ = normalize.Text(rec["family"])
		row.Section, _ = normalize.Text(rec["section"])
		row.CommonUnique, _ = normalize.Text(rec["common_unique"])
		row.BUoM, _ = normalize.Text(rec["buom"])
		rows = append(rows, row)
	}
	return rows, nil
}

func (e *Extractor) skus(snp *Workbook, res *Result) {
	recs, err := snp.Records(e.layout.SKUs)
	if err != nil {
		e.log.Warn("error loading SKU master sheet, treated as empty", zap.Error(err))
		return
	}
	for _, rec := range recs {
		code, ok := normalize.Code(rec["product"])
		if !ok {
			continue
		}
		if _, dup := res.SKUs[code]; dup {
			continue
		}
		sku, _ := normalize.Text(rec["sku"])
		country, _ := normalize.Text(rec["country"])
		res.SKUs[code] = SKURecord{
			ProductCode: code,
			SKU:         sku,
			Country:     country,
			PackSize:    rec["pack_size"],
		}
		res.SKUOrder = append(res.SKUOrder, code)
	}
}

func (e *Extractor) resources(snp *Workbook, res *Result) {
	recs, err := snp.Records(e.layout.Resources)
	if err != nil {
		e.log.Warn("error loading line utilization sheet, treated as empty", zap.Error(err))
		return
	}
	for _, rec := range recs {
		code, ok := normalize.Code(rec["product"])
		if !ok {
			continue
		}
		id, _ := normalize.Text(rec["resource"])
		desc, _ := normalize.Text(rec["description"])
		res.Resources[code] = ResourceRecord{ResourceID: id, Description: desc}
	}
}
