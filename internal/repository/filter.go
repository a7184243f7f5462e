package repository

import (
	"fmt"
	"strings"

	"workbrew/internal/models"
)

const cafeColumns = `id, name, map_url, img_url, location, has_sockets, has_toilet, has_wifi, can_take_calls, seats, coffee_price, lat, lng`

// buildListQuery turns a filter into a conjunctive SELECT ordered by name.
// Every set field contributes exactly one equality predicate.
func buildListQuery(filter models.CafeFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if filter.Wifi {
		clauses = append(clauses, "has_wifi = TRUE")
	}
	if filter.Sockets {
		clauses = append(clauses, "has_sockets = TRUE")
	}
	if filter.Calls {
		clauses = append(clauses, "can_take_calls = TRUE")
	}
	if filter.Location != "" {
		args = append(args, filter.Location)
		clauses = append(clauses, fmt.Sprintf("location = $%d", len(args)))
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(cafeColumns)
	sb.WriteString(" FROM cafe")
	if len(clauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}
	sb.WriteString(" ORDER BY name ASC")

	return sb.String(), args
}
