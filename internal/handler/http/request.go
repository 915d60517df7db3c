package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-keeper/models"
)

// userIDFromURL parses the {id} path segment.
func userIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}

// paginationFromQuery reads pageNumber and pageSize, applying the defaults
// for absent parameters. Range checks are left to the service.
func paginationFromQuery(r *http.Request) (models.Pagination, error) {
	query := r.URL.Query()
	pagination := models.Pagination{
		PageNumber: models.DefaultPageNumber,
		PageSize:   models.DefaultPageSize,
	}

	if raw := query.Get("pageNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, fmt.Errorf("%w: pageNumber %q", ErrInvalidPageParam, raw)
		}
		pagination.PageNumber = n
	}
	if raw := query.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, fmt.Errorf("%w: pageSize %q", ErrInvalidPageParam, raw)
		}
		pagination.PageSize = n
	}

	return pagination, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
