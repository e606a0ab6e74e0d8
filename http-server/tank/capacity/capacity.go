package capacity

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"grptank/internal/service/bom"
	"grptank/internal/storage"
)

// CalculateCapacity handles POST /api/tank/capacity: a fast volume/surface
// preview without running the full part derivation.
func CalculateCapacity(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.tank.CalculateCapacity"

		var req struct {
			Dimensions storage.TankDimensions `json:"dimensions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		info, err := bom.Capacity(req.Dimensions)
		if err != nil {
			if errors.Is(err, bom.ErrInvalidGeometry) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to calculate capacity", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, info)
	}
}
