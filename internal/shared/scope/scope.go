// Package scope holds reusable gorm scopes for the filters most list endpoints share.
package scope

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Location restricts column to locationID. Zero or negative means no filter.
func Location(column string, locationID int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if locationID <= 0 {
			return db
		}
		return db.Where(column+" = ?", locationID)
	}
}

// DateRange bounds column inclusively. Either end may be empty.
func DateRange(column, start, end string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != "" {
			db = db.Where(column+" >= ?", start)
		}
		if end != "" {
			db = db.Where(column+" <= ?", end)
		}
		return db
	}
}

// Search matches q case-insensitively against any of columns.
func Search(q string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q = strings.TrimSpace(q)
		if q == "" || len(columns) == 0 {
			return db
		}
		like := "%" + q + "%"
		conds := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, c := range columns {
			conds[i] = c + " ILIKE ?"
			args[i] = like
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// Between bounds a numeric column inclusively. Nil bounds are skipped.
func Between(column string, min, max *decimal.Decimal) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if min != nil {
			db = db.Where(column+" >= ?", *min)
		}
		if max != nil {
			db = db.Where(column+" <= ?", *max)
		}
		return db
	}
}
