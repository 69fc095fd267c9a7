// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONIntMap stores a map[string]int as a JSON text column. Used for the
// wallet's per-app daily reward usage so the schema works on both postgres
// and the sqlite test database.
type JSONIntMap map[string]int

// Value implements driver.Valuer.
func (m JSONIntMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *JSONIntMap) Scan(src interface{}) error {
	if src == nil {
		*m = JSONIntMap{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONIntMap", src)
	}
	if len(b) == 0 {
		*m = JSONIntMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// JSONStringSlice stores a []string as a JSON text column.
type JSONStringSlice []string

// Value implements driver.Valuer.
func (s JSONStringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *JSONStringSlice) Scan(src interface{}) error {
	if src == nil {
		*s = JSONStringSlice{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONStringSlice", src)
	}
	if len(b) == 0 {
		*s = JSONStringSlice{}
		return nil
	}
	return json.Unmarshal(b, s)
}
