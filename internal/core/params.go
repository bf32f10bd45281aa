// AngelaMos | 2026
// params.go

package core

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ParseID reads a positive integer path parameter.
func ParseID(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, BadRequestError(key + " must be a positive integer")
	}

	return id, nil
}

// Param is a path segment that addresses a resource either by numeric id
// or by a human-readable key.
type Param struct {
	ID  int64
	Key string
}

func (p Param) IsID() bool {
	return p.ID > 0
}

// ParseHandleParam treats a leading '@' as a nametag and anything else as an
// id, rejecting values that are neither.
func ParseHandleParam(r *http.Request, key string) (Param, error) {
	raw := chi.URLParam(r, key)

	if nametag, ok := strings.CutPrefix(raw, "@"); ok {
		if nametag == "" {
			return Param{}, BadRequestError(key + " nametag is empty")
		}
		return Param{Key: nametag}, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return Param{}, BadRequestError(key + " must be an id or an @nametag")
	}

	return Param{ID: id}, nil
}

// ParseNameParam treats a digits-only value as an id and anything else as a
// name.
func ParseNameParam(raw string) (Param, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Param{}, BadRequestError("identifier is required")
	}

	if IsDigits(raw) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return Param{}, BadRequestError("id must be a positive integer")
		}
		return Param{ID: id}, nil
	}

	return Param{Key: raw}, nil
}
