package handler

import (
	"net/http"
	"strconv"
)

// QueryInt reads an integer query parameter, falling back to def when it is
// missing or unparsable and clamping the result to [min, max].
func QueryInt(r *http.Request, key string, def, min, max int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// PathParam reads a required path value, writing a 400 when it is empty.
func PathParam(w http.ResponseWriter, r *http.Request, name, label string) (string, bool) {
	value := r.PathValue(name)
	if value == "" {
		respondBadRequest(w, label+" is required")
		return "", false
	}
	return value, true
}
