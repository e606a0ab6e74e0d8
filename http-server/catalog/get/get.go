package get

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"grptank/internal/service/catalog"
	"grptank/internal/storage"
)

type PartProvider interface {
	Get(partNo string) (storage.PartInfo, error)
	List(skip, limit int) []storage.PartInfo
	Len() int
}

// GetPart handles GET /api/tank/prices/{partNo}.
func GetPart(log *slog.Logger, parts PartProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.catalog.GetPart"

		partNo := chi.URLParam(r, "partNo")
		if partNo == "" {
			http.Error(w, "part number is required", http.StatusBadRequest)
			return
		}

		p, err := parts.Get(partNo)
		if err != nil {
			if errors.Is(err, catalog.ErrPartNotFound) {
				http.Error(w, "part not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get part", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, p)
	}
}

type ListResp struct {
	Total int                `json:"total"`
	Parts []storage.PartInfo `json:"parts"`
}

// ListParts handles GET /api/tank/prices?skip=&limit=.
func ListParts(log *slog.Logger, parts PartProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip := queryInt(r, "skip", 0)
		limit := queryInt(r, "limit", 100)

		render.JSON(w, r, ListResp{
			Total: parts.Len(),
			Parts: parts.List(skip, limit),
		})
	}
}

func queryInt(r *http.Request, name string, def int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return def
	}
	return v
}
