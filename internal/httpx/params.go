package httpx

import (
	"strconv"
	"strings"
)

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiDef(s string, d int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return v
}

func paginate[T any](rows []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = len(rows)
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}
