package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"liftbase/internal/domain"
)

// exerciseColumns is the SELECT column list for exercise queries. Order must
// match exerciseRow.scanArgs exactly.
const exerciseColumns = `id, name, description, muscle_groups, equipment_needed, difficulty_level`

// exerciseRow holds all columns from an exercise query for scanning.
type exerciseRow struct {
	ID               string
	Name             string
	Description      sql.NullString
	MuscleGroupsJSON string
	EquipmentNeeded  sql.NullString
	DifficultyLevel  int
}

// scanArgs returns pointers to all fields for sql.Scan, in exerciseColumns
// order.
func (r *exerciseRow) scanArgs() []any {
	return []any{
		&r.ID,
		&r.Name,
		&r.Description,
		&r.MuscleGroupsJSON,
		&r.EquipmentNeeded,
		&r.DifficultyLevel,
	}
}

// toDomain converts the scanned row to a domain.Exercise. A non-JSON
// muscle_groups value is a decode error; Add always writes valid JSON, so
// this only fires on external corruption.
func (r *exerciseRow) toDomain() (domain.Exercise, error) {
	var groups []string
	if err := json.Unmarshal([]byte(r.MuscleGroupsJSON), &groups); err != nil {
		return domain.Exercise{}, fmt.Errorf("unmarshal muscle groups: %w", err)
	}

	return domain.Exercise{
		ID:              r.ID,
		Name:            r.Name,
		Description:     nullToString(r.Description),
		MuscleGroups:    groups,
		EquipmentNeeded: nullToString(r.EquipmentNeeded),
		DifficultyLevel: r.DifficultyLevel,
	}, nil
}

// encodeMuscleGroups serializes the muscle-group list to a JSON array
// string. A nil slice is normalized to [] so the stored form is always an
// array.
func encodeMuscleGroups(groups []string) (string, error) {
	if groups == nil {
		groups = []string{}
	}
	data, err := json.Marshal(groups)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// nullToString safely converts sql.NullString to string.
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull safely converts string to sql.NullString; the empty string
// maps to NULL.
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
