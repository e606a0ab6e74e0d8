package generate_excel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"grptank/internal/service/bom"
	"grptank/internal/storage"
)

type QuotationGenerator interface {
	GenerateQuotation(ctx context.Context, req storage.TankConfigRequest) ([]byte, error)
}

// GenerateReportExcel handles POST /api/report/excel: runs the calculation
// for the posted configuration and streams the quotation workbook.
func GenerateReportExcel(log *slog.Logger, gen QuotationGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateReportExcel"

		var req storage.TankConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateQuotation(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, bom.ErrInvalidGeometry), errors.Is(err, bom.ErrUnresolvedOption):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, bom.ErrUnknownPart):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			default:
				log.Error("failed to generate excel", "op", op, "err", err)
				http.Error(w, "Internal error", http.StatusInternalServerError)
			}
			return
		}

		fileName := fmt.Sprintf("Tank_Quotation_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
