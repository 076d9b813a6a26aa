package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Difficulty bounds for the 1-10 scale. Constructors clamp into this range.
const (
	MinDifficulty = 1
	MaxDifficulty = 10
)

// Exercise represents a single exercise in the catalog.
//
// Description and EquipmentNeeded are optional; the empty string means
// "not set" and is stored as NULL. MuscleGroups is semantically a set of
// labels but its order survives storage round-trips.
type Exercise struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	MuscleGroups    []string `json:"muscle_groups"`
	EquipmentNeeded string   `json:"equipment_needed,omitempty"`
	DifficultyLevel int      `json:"difficulty_level"`
}

// NewExercise creates an exercise with a freshly generated UUID-v4 id.
// difficultyLevel is clamped into [MinDifficulty, MaxDifficulty]; out-of-range
// input is corrected, never rejected.
func NewExercise(name, description string, muscleGroups []string, equipmentNeeded string, difficultyLevel int) Exercise {
	return NewExerciseWithID(uuid.NewString(), name, description, muscleGroups, equipmentNeeded, difficultyLevel)
}

// NewExerciseWithID creates an exercise with a caller-supplied id.
func NewExerciseWithID(id, name, description string, muscleGroups []string, equipmentNeeded string, difficultyLevel int) Exercise {
	return Exercise{
		ID:              id,
		Name:            name,
		Description:     description,
		MuscleGroups:    muscleGroups,
		EquipmentNeeded: equipmentNeeded,
		DifficultyLevel: clampDifficulty(difficultyLevel),
	}
}

// Validate checks that the exercise has all required fields. It is a
// caller-invoked policy check: construction clamps the difficulty but does
// not enforce name or muscle-group presence, so a record can exist that
// fails Validate. The repository does not run this automatically.
func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("exercise name cannot be empty")
	}
	if len(e.MuscleGroups) == 0 {
		return errors.New("exercise must target at least one muscle group")
	}
	if e.DifficultyLevel < MinDifficulty || e.DifficultyLevel > MaxDifficulty {
		return fmt.Errorf("difficulty level must be between %d and %d, got %d",
			MinDifficulty, MaxDifficulty, e.DifficultyLevel)
	}
	return nil
}

// DifficultyDescription returns a human-readable tier for the 1-10 scale,
// two levels per band.
func (e Exercise) DifficultyDescription() string {
	switch {
	case e.DifficultyLevel >= 1 && e.DifficultyLevel <= 2:
		return "Very Easy"
	case e.DifficultyLevel >= 3 && e.DifficultyLevel <= 4:
		return "Easy"
	case e.DifficultyLevel >= 5 && e.DifficultyLevel <= 6:
		return "Moderate"
	case e.DifficultyLevel >= 7 && e.DifficultyLevel <= 8:
		return "Hard"
	case e.DifficultyLevel >= 9 && e.DifficultyLevel <= 10:
		return "Very Hard"
	default:
		return "Unknown"
	}
}

// RequiresEquipment reports whether the exercise needs equipment, as opposed
// to being a bodyweight movement.
func (e Exercise) RequiresEquipment() bool {
	return e.EquipmentNeeded != ""
}

// MuscleGroupCount returns the number of muscle groups targeted.
func (e Exercise) MuscleGroupCount() int {
	return len(e.MuscleGroups)
}

func clampDifficulty(level int) int {
	if level < MinDifficulty {
		return MinDifficulty
	}
	if level > MaxDifficulty {
		return MaxDifficulty
	}
	return level
}
