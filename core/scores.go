package core

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Scores voting power per choice, stored as a json array
type Scores []decimal.Decimal

// Sum total of all scores
func (s Scores) Sum() decimal.Decimal {
	return decimal.Sum(decimal.Zero, s...)
}

// sql

func (s Scores) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]decimal.Decimal(s))
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

func (s *Scores) Scan(src interface{}) error {
	v := cast.ToString(src)
	if v == "" {
		*s = nil
		return nil
	}

	var scores []decimal.Decimal
	if err := json.Unmarshal([]byte(v), &scores); err != nil {
		return err
	}

	*s = scores
	return nil
}
