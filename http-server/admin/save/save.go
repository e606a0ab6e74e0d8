package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"grptank/internal/storage"
)

type PartSaver interface {
	UpsertPart(ctx context.Context, p storage.PartInfo) error
}

type Resp struct {
	Status string `json:"status"`
	PartNo string `json:"part_no"`
}

// SavePartAdmin handles POST /api/admin/catalog/part: inserts or updates one
// catalog row. The live snapshot picks it up on the next reload.
func SavePartAdmin(log *slog.Logger, saver PartSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.SavePartAdmin"

		var p storage.PartInfo
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if p.PartNo == "" {
			http.Error(w, "part_no is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.UpsertPart(ctx, p); err != nil {
			log.Error("failed to save part", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Resp{Status: "ok", PartNo: p.PartNo})
	}
}
