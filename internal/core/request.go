// AngelaMos | 2026
// request.go

package core

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// QueryInt falls back to defaultVal when the parameter is absent or not a number.
func QueryInt(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}

func URLParamInt64(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
