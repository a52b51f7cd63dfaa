package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrInvalidFloat64Value = errors.New("invalid float64 value in pgtype.Numeric")
	ErrInt32Range          = errors.New("value out of int32 range")
)

// Int32 narrows v for an integer column, rejecting values that would wrap.
func Int32(v int64) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d", ErrInt32Range, v)
	}
	return int32(v), nil
}

func Float64FromNumeric(pn pgtype.Numeric) (float64, error) {
	if !pn.Valid {
		return 0, nil
	}

	value, err := pn.Float64Value()
	if err != nil || !value.Valid {
		return 0, ErrInvalidFloat64Value
	}

	return value.Float64, nil
}

func NumericFromFloat64(f float64) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(f, 'f', -1, 64)); err != nil {
		return pgtype.Numeric{Int: big.NewInt(0), Valid: true}
	}
	return n
}

// DateString formats a date column as YYYY-MM-DD, or nil when NULL.
func DateString(d pgtype.Date) *string {
	if !d.Valid {
		return nil
	}
	s := d.Time.Format("2006-01-02")
	return &s
}

func TimeFromPgtype(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

func TextFromPgtype(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func Int64FromPgtype(n pgtype.Int8) int64 {
	if !n.Valid {
		return 0
	}
	return n.Int64
}

// NormalizeRow converts driver values produced by pgx.RowToMap into JSON-friendly ones.
func NormalizeRow(row map[string]any) map[string]any {
	for k, v := range row {
		row[k] = NormalizeValue(v)
	}
	return row
}

func NormalizeValue(v any) any {
	switch val := v.(type) {
	case [16]byte:
		return uuid.UUID(val).String()
	case pgtype.UUID:
		if !val.Valid {
			return nil
		}
		return uuid.UUID(val.Bytes).String()
	case pgtype.Numeric:
		if !val.Valid {
			return nil
		}
		f, err := Float64FromNumeric(val)
		if err != nil {
			return nil
		}
		return f
	case []any:
		for i := range val {
			val[i] = NormalizeValue(val[i])
		}
		return val
	case map[string]any:
		return NormalizeRow(val)
	default:
		return v
	}
}

// ToInt64 reads integer-like values from a normalized row.
func ToInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int16:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
