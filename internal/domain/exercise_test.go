package domain

import (
	"strings"
	"testing"
)

func TestNewExerciseWithID(t *testing.T) {
	t.Run("creates exercise with supplied fields", func(t *testing.T) {
		ex := NewExerciseWithID("ex-1", "Push-up", "Basic bodyweight exercise",
			[]string{"Chest", "Triceps"}, "", 5)

		if ex.ID != "ex-1" {
			t.Errorf("expected ID 'ex-1', got %s", ex.ID)
		}
		if ex.Name != "Push-up" {
			t.Errorf("expected name 'Push-up', got %s", ex.Name)
		}
		if ex.Description != "Basic bodyweight exercise" {
			t.Errorf("unexpected description: %s", ex.Description)
		}
		if len(ex.MuscleGroups) != 2 || ex.MuscleGroups[0] != "Chest" || ex.MuscleGroups[1] != "Triceps" {
			t.Errorf("unexpected muscle groups: %v", ex.MuscleGroups)
		}
		if ex.EquipmentNeeded != "" {
			t.Errorf("expected no equipment, got %s", ex.EquipmentNeeded)
		}
		if ex.DifficultyLevel != 5 {
			t.Errorf("expected difficulty 5, got %d", ex.DifficultyLevel)
		}
	})
}

func TestNewExerciseGeneratesID(t *testing.T) {
	ex := NewExercise("Squat", "", []string{"Quadriceps"}, "Barbell", 6)

	if ex.ID == "" {
		t.Fatal("expected generated ID")
	}
	if len(ex.ID) != 36 {
		t.Errorf("expected 36-character canonical UUID, got %d characters: %s", len(ex.ID), ex.ID)
	}
	if strings.Count(ex.ID, "-") != 4 {
		t.Errorf("expected canonical UUID form, got %s", ex.ID)
	}

	other := NewExercise("Squat", "", []string{"Quadriceps"}, "Barbell", 6)
	if other.ID == ex.ID {
		t.Error("expected distinct IDs for distinct constructions")
	}
}

func TestDifficultyClamping(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"below range", 0, 1},
		{"far below range", -50, 1},
		{"lower bound", 1, 1},
		{"in range", 7, 7},
		{"upper bound", 10, 10},
		{"above range", 11, 10},
		{"far above range", 200, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := NewExerciseWithID("id", "Name", "", []string{"Back"}, "", tt.input)
			if ex.DifficultyLevel != tt.want {
				t.Errorf("difficulty %d: expected clamp to %d, got %d", tt.input, tt.want, ex.DifficultyLevel)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := NewExerciseWithID("v1", "Deadlift", "", []string{"Hamstrings", "Back"}, "Barbell", 9)
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid exercise, got %v", err)
	}

	t.Run("empty name", func(t *testing.T) {
		ex := NewExerciseWithID("v2", "", "", []string{"Back"}, "", 5)
		err := ex.Validate()
		if err == nil {
			t.Fatal("expected validation error for empty name")
		}
		if !strings.Contains(err.Error(), "name") {
			t.Errorf("expected error to name the failing rule, got %q", err)
		}
	})

	t.Run("whitespace-only name", func(t *testing.T) {
		ex := NewExerciseWithID("v3", "   \t", "", []string{"Back"}, "", 5)
		if ex.Validate() == nil {
			t.Fatal("expected validation error for blank name")
		}
	})

	t.Run("no muscle groups", func(t *testing.T) {
		ex := NewExerciseWithID("v4", "Plank", "", nil, "", 3)
		err := ex.Validate()
		if err == nil {
			t.Fatal("expected validation error for empty muscle groups")
		}
		if !strings.Contains(err.Error(), "muscle group") {
			t.Errorf("expected error to name the failing rule, got %q", err)
		}
	})

	t.Run("out of range difficulty set after construction", func(t *testing.T) {
		ex := NewExerciseWithID("v5", "Plank", "", []string{"Core"}, "", 3)
		ex.DifficultyLevel = 15
		err := ex.Validate()
		if err == nil {
			t.Fatal("expected validation error for out-of-range difficulty")
		}
		if !strings.Contains(err.Error(), "between 1 and 10") {
			t.Errorf("expected range in message, got %q", err)
		}
	})

	t.Run("does not mutate", func(t *testing.T) {
		ex := NewExerciseWithID("v6", " ", "", nil, "", 5)
		_ = ex.Validate()
		if ex.Name != " " || ex.MuscleGroups != nil {
			t.Error("Validate must not mutate the record")
		}
	})
}

func TestDifficultyDescription(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Very Easy"},
		{2, "Very Easy"},
		{3, "Easy"},
		{4, "Easy"},
		{5, "Moderate"},
		{6, "Moderate"},
		{7, "Hard"},
		{8, "Hard"},
		{9, "Very Hard"},
		{10, "Very Hard"},
	}

	for _, tt := range tests {
		ex := NewExerciseWithID("d", "Name", "", []string{"Back"}, "", tt.level)
		if got := ex.DifficultyDescription(); got != tt.want {
			t.Errorf("level %d: expected %q, got %q", tt.level, tt.want, got)
		}
	}

	t.Run("unclamped value outside scale", func(t *testing.T) {
		ex := Exercise{DifficultyLevel: 0}
		if got := ex.DifficultyDescription(); got != "Unknown" {
			t.Errorf("expected Unknown, got %q", got)
		}
	})
}

func TestRequiresEquipment(t *testing.T) {
	bodyweight := NewExerciseWithID("b", "Push-up", "", []string{"Chest"}, "", 3)
	if bodyweight.RequiresEquipment() {
		t.Error("expected bodyweight exercise to require no equipment")
	}

	loaded := NewExerciseWithID("l", "Bench Press", "", []string{"Chest"}, "Barbell", 6)
	if !loaded.RequiresEquipment() {
		t.Error("expected barbell exercise to require equipment")
	}
}

func TestMuscleGroupCount(t *testing.T) {
	ex := NewExerciseWithID("m", "Deadlift", "", []string{"Hamstrings", "Glutes", "Back"}, "Barbell", 9)
	if got := ex.MuscleGroupCount(); got != 3 {
		t.Errorf("expected 3 muscle groups, got %d", got)
	}

	none := NewExerciseWithID("n", "Plank", "", nil, "", 3)
	if got := none.MuscleGroupCount(); got != 0 {
		t.Errorf("expected 0 muscle groups, got %d", got)
	}
}
