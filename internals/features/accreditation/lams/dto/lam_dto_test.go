package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"akreditasi_backend/internals/features/accreditation/lams/model"
)

func TestReplaceLevelsRequestValidation(t *testing.T) {
	v := validator.New()
	tests := []struct {
		name    string
		req     ReplaceLevelsRequest
		wantErr bool
	}{
		{"ok", ReplaceLevelsRequest{Levels: []LevelItem{{LevelName: "Unggul", LevelThreshold: 361}}}, false},
		{"empty", ReplaceLevelsRequest{}, true},
		{"negative threshold", ReplaceLevelsRequest{Levels: []LevelItem{{LevelName: "X", LevelThreshold: -1}}}, true},
		{"missing name", ReplaceLevelsRequest{Levels: []LevelItem{{LevelThreshold: 1}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReplaceLevelsRequestNormalizeAndDuplicates(t *testing.T) {
	req := ReplaceLevelsRequest{Levels: []LevelItem{
		{LevelName: "  Unggul ", LevelThreshold: 361},
		{LevelName: "unggul", LevelThreshold: 300},
	}}.Normalize()

	if req.Levels[0].LevelName != "Unggul" {
		t.Fatalf("name not trimmed: %q", req.Levels[0].LevelName)
	}
	if name, dup := req.DuplicateName(); !dup || name != "unggul" {
		t.Fatalf("expected duplicate detection, got %q %v", name, dup)
	}

	models := req.ToModels()
	if models[1].LamLevelOrder != 1 {
		t.Fatalf("declaration order not kept")
	}
}

func TestNewLevelsResponseCanonicalOrder(t *testing.T) {
	resp := NewLevelsResponse(uuid.New(), []model.LamLevelModel{
		{LamLevelName: "Baik", LamLevelThreshold: 200},
		{LamLevelName: "Unggul", LamLevelThreshold: 361},
		{LamLevelName: "Baik Sekali", LamLevelThreshold: 301},
	}, "")
	if resp.Levels[0].Name != "Unggul" || resp.Levels[2].Name != "Baik" {
		t.Fatalf("expected descending order, got %+v", resp.Levels)
	}
	if resp.Fallback != "Tidak Terakreditasi" {
		t.Fatalf("unexpected fallback %q", resp.Fallback)
	}
}
