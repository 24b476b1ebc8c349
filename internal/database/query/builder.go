// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package query

import (
	"strings"
	"time"
)

// WhereBuilder accumulates AND-ed conditions and their bind arguments.
// Every Add method skips its condition when the input is empty or nil, so
// optional request filters can be passed straight through.
type WhereBuilder struct {
	conds []string
	args  []interface{}
}

// NewWhereBuilder returns an empty builder.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{}
}

func (wb *WhereBuilder) add(cond string, args ...interface{}) *WhereBuilder {
	wb.conds = append(wb.conds, cond)
	wb.args = append(wb.args, args...)
	return wb
}

// AddTimeRange bounds a timestamp column. Either end may be nil.
func (wb *WhereBuilder) AddTimeRange(column string, from, to *time.Time) *WhereBuilder {
	if from != nil {
		wb.add(column+" >= ?", *from)
	}
	if to != nil {
		wb.add(column+" <= ?", *to)
	}
	return wb
}

// AddAnyFlag matches rows with at least one of the boolean columns set,
// e.g. any of the requested traveler-type affinities.
func (wb *WhereBuilder) AddAnyFlag(columns []string) *WhereBuilder {
	switch len(columns) {
	case 0:
		return wb
	case 1:
		return wb.add(columns[0])
	default:
		return wb.add("(" + strings.Join(columns, " OR ") + ")")
	}
}

// AddAllFlags matches rows with every boolean column set, e.g. region flags.
func (wb *WhereBuilder) AddAllFlags(columns []string) *WhereBuilder {
	for _, c := range columns {
		wb.add(c)
	}
	return wb
}

// AddMaxValue caps a numeric column.
func (wb *WhereBuilder) AddMaxValue(column string, limit *float64) *WhereBuilder {
	if limit == nil {
		return wb
	}
	return wb.add(column+" <= ?", *limit)
}

// AddNameContains matches a case-insensitive substring. Surrounding
// whitespace in substr is ignored.
func (wb *WhereBuilder) AddNameContains(column, substr string) *WhereBuilder {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return wb
	}
	return wb.add("lower("+column+") LIKE ?", "%"+strings.ToLower(substr)+"%")
}

// Build joins the conditions with AND. It returns "" when there are none.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	return strings.Join(wb.conds, " AND "), wb.args
}

// BuildWithPrefix is Build with a leading "WHERE ", or "" when there are
// no conditions.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	where, args := wb.Build()
	if where == "" {
		return "", args
	}
	return "WHERE " + where, args
}
