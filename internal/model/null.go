package model

import (
	"database/sql"
	"time"
)

// Num wraps a float64 in a valid sql.NullFloat64.
func Num(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

// Null is an invalid (null) sql.NullFloat64.
func Null() sql.NullFloat64 {
	return sql.NullFloat64{}
}

// Date wraps a time.Time in a valid sql.NullTime.
func Date(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}
