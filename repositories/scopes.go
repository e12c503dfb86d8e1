package repositories

import (
	"strings"

	"gorm.io/gorm"
)

// Search matches q case-insensitively against any of columns. An empty q leaves the query untouched.
func Search(q string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q = strings.TrimSpace(q)
		if q == "" || len(columns) == 0 {
			return db
		}

		like := "%" + strings.ToLower(q) + "%"
		conds := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = like
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

func StatusIs(column, status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where(column+" = ?", status)
	}
}
