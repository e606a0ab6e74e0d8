package reload

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type CatalogReloader interface {
	Reload(ctx context.Context) error
	Len() int
}

type Resp struct {
	Status string `json:"status"`
	Parts  int    `json:"parts"`
}

// ReloadCatalog handles POST /api/admin/catalog/reload: re-reads the parts
// catalog from the database and swaps the in-memory snapshot.
func ReloadCatalog(log *slog.Logger, cat CatalogReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.admin.ReloadCatalog"

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		if err := cat.Reload(ctx); err != nil {
			log.Error("failed to reload catalog", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Resp{Status: "ok", Parts: cat.Len()})
	}
}
