package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveHierarchyLevel(t *testing.T) {
	tests := []struct {
		code string
		want HierarchyLevel
	}{
		{"800004403", HierarchyPacking},
		{"8", HierarchyPacking},
		{"700003964", HierarchyAssembly},
		{"700001012", HierarchyFilling},
		{"900001", HierarchyFilling},
		{"", HierarchyFilling},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveHierarchyLevel(tt.code))
		})
	}
}

func TestDeriveResourceStage(t *testing.T) {
	tests := []struct {
		code string
		want ResourceStage
	}{
		{"700003964", StageAssembly},
		{"700001012", StageFilling},
		{"800004403", StagePacking},
		{"", StagePacking},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveResourceStage(tt.code))
		})
	}
}

func TestLevelFromTag(t *testing.T) {
	assert.Equal(t, 1, LevelFromTag(TagMarketSKU))
	assert.Equal(t, 2, LevelFromTag(TagAssembly))
	assert.Equal(t, 3, LevelFromTag(TagFilling))
	assert.Equal(t, 3, LevelFromTag("anything else"))
	assert.Equal(t, 3, LevelFromTag(""))
}
