package calculate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"grptank/internal/service/bom"
	"grptank/internal/storage"
)

type BOMCalculator interface {
	Calculate(ctx context.Context, req storage.TankConfigRequest) (*storage.BOMResult, error)
}

// CalculateBOM handles POST /api/tank/calculate.
func CalculateBOM(log *slog.Logger, calc BOMCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.tank.CalculateBOM"

		var req storage.TankConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := calc.Calculate(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, bom.ErrInvalidGeometry), errors.Is(err, bom.ErrUnresolvedOption):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, bom.ErrUnknownPart):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			default:
				log.Error("failed to calculate bom", "op", op, "err", err)
				http.Error(w, "Internal error", http.StatusInternalServerError)
			}
			return
		}

		render.JSON(w, r, result)
	}
}
