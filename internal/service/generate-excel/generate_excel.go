package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"grptank/internal/storage"
)

type BOMCalculator interface {
	Calculate(ctx context.Context, req storage.TankConfigRequest) (*storage.BOMResult, error)
}

type QuotationService struct {
	calc BOMCalculator
}

func NewQuotationService(calc BOMCalculator) *QuotationService {
	return &QuotationService{calc: calc}
}

// GenerateQuotation runs the calculation and renders the BOM as a quotation
// workbook: order header, part lines grouped by category, summary block.
func (g *QuotationService) GenerateQuotation(ctx context.Context, req storage.TankConfigRequest) ([]byte, error) {
	result, err := g.calc.Calculate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("calculate bom: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Quotation"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	categoryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"F5F5F5"}, Pattern: 1},
	})

	row := 1

	// Order header block.
	if oi := req.OrderInfo; oi != nil {
		orderFields := [][2]string{
			{"Order No", oi.OrderNo},
			{"Project", oi.ProjectName},
			{"Location", oi.Location},
			{"Sales Rep", oi.SalesRep},
			{"Delivery Date", oi.DeliveryDate},
		}
		for _, field := range orderFields {
			if field[1] == "" {
				continue
			}
			f.SetCellValue(sheet, cellName(1, row), field[0])
			f.SetCellValue(sheet, cellName(2, row), field[1])
			row++
		}
		row++
	}

	d := req.Dimensions
	f.SetCellValue(sheet, cellName(1, row), "Tank Size (WxLxH)")
	f.SetCellValue(sheet, cellName(2, row), fmt.Sprintf("%gx%gx%g m", d.Width, result.Capacity.TotalLength, d.Height))
	row++
	f.SetCellValue(sheet, cellName(1, row), "Nominal Capacity")
	f.SetCellValue(sheet, cellName(2, row), fmt.Sprintf("%.2f m3", result.Capacity.NominalCapacityM3))
	row++
	f.SetCellValue(sheet, cellName(1, row), "Actual Capacity")
	f.SetCellValue(sheet, cellName(2, row), fmt.Sprintf("%.2f m3", result.Capacity.ActualCapacityM3))
	row += 2

	headers := []string{"Part No", "Part Name", "Category", "Qty", "Unit Price (USD)", "Total Price (USD)", "Unit Weight (kg)", "Total Weight (kg)"}
	headerRow := row
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, row), name)
	}
	f.SetCellStyle(sheet, cellName(1, row), cellName(len(headers), row), headerStyle)
	row++

	// Part lines grouped by category, keeping calculator order inside each
	// group.
	var lastCategory string
	for _, item := range result.BOM {
		if item.Category != lastCategory {
			f.SetCellValue(sheet, cellName(1, row), item.Category)
			f.SetCellStyle(sheet, cellName(1, row), cellName(len(headers), row), categoryStyle)
			lastCategory = item.Category
			row++
		}

		f.SetCellValue(sheet, cellName(1, row), item.PartNo)
		f.SetCellValue(sheet, cellName(2, row), item.PartName)
		f.SetCellValue(sheet, cellName(3, row), item.Category)
		f.SetCellValue(sheet, cellName(4, row), item.Quantity)
		f.SetCellValue(sheet, cellName(5, row), item.UnitPriceUSD)
		f.SetCellValue(sheet, cellName(6, row), item.TotalPriceUSD)
		f.SetCellValue(sheet, cellName(7, row), item.WeightKg)
		f.SetCellValue(sheet, cellName(8, row), item.TotalWeightKg)
		row++
	}
	row++

	// Summary block.
	cs := result.CostSummary
	summary := [][2]interface{}{
		{"Panels", cs.Panels},
		{"Steel Skid", cs.SteelSkid},
		{"Bolts & Nuts", cs.BoltsNuts},
		{"External Reinforcing", cs.ExternalReinforcing},
		{"Internal Reinforcing", cs.InternalReinforcing},
		{"Internal Tie-rod", cs.InternalTieRod},
		{"ETC", cs.Etc},
		{"Fittings", cs.Fittings},
		{"Total (USD)", cs.TotalUSD},
		{"Total (SAR)", cs.TotalSAR},
		{"Total Weight (kg)", result.WeightSummary.TotalKg},
	}
	f.SetCellValue(sheet, cellName(1, row), "Summary")
	f.SetCellStyle(sheet, cellName(1, row), cellName(2, row), headerStyle)
	row++
	for _, line := range summary {
		f.SetCellValue(sheet, cellName(1, row), line[0])
		f.SetCellValue(sheet, cellName(2, row), line[1])
		row++
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
	})
	f.SetColWidth(sheet, "A", "B", 22)
	f.SetColWidth(sheet, "C", "H", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
