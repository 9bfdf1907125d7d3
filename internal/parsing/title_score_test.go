package parsing

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/stretchr/testify/assert"
)

func TestScoreTitle(t *testing.T) {
	tax := taxonomy.MustDefault()

	tests := []struct {
		name         string
		line         string
		wantScore    int
		wantTitle    bool
		wantFeatures []TitleFeature
	}{
		{
			name:         "title with tech list",
			line:         "E-Commerce Platform (React, Node, MongoDB)",
			wantScore:    95,
			wantTitle:    true,
			wantFeatures: []TitleFeature{FeatureProjectNoun, FeatureTitleCase, FeatureShort},
		},
		{
			name:         "sentence with action verb",
			line:         "Developed a REST API for inventory management.",
			wantScore:    5,
			wantTitle:    false,
			wantFeatures: []TitleFeature{FeatureEndsWithPeriod, FeatureActionVerb, FeatureProjectNoun},
		},
		{
			name:         "adjectival verb clamps at 100",
			line:         "Build System Optimizer",
			wantScore:    100,
			wantTitle:    true,
			wantFeatures: []TitleFeature{FeatureAdjectivalVerb, FeatureProjectNoun, FeatureTitleCase, FeatureShort},
		},
		{
			name:         "all upper",
			line:         "TASK MANAGER APP",
			wantScore:    100,
			wantTitle:    true,
			wantFeatures: []TitleFeature{FeatureProjectNoun, FeatureAllUpper, FeatureShort},
		},
		{
			name:         "explicit tech label",
			line:         "Tech Stack: React, Node.js, MongoDB",
			wantScore:    30,
			wantTitle:    false,
			wantFeatures: []TitleFeature{FeatureTitleCase, FeatureShort, FeatureTechLabel},
		},
		{
			name:         "pure tech list",
			line:         "React, Node.js, MongoDB",
			wantScore:    40,
			wantTitle:    false,
			wantFeatures: []TitleFeature{FeatureTitleCase, FeatureShort, FeatureTechList},
		},
		{
			name:         "long lower-case line clamps at 0",
			line:         "implemented caching and pagination across all listing endpoints to cut response times",
			wantScore:    0,
			wantTitle:    false,
			wantFeatures: []TitleFeature{FeatureActionVerb, FeatureLowerStart, FeatureTooLong},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreTitle(tt.line, tax)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantTitle, got.IsTitle(DefaultTitleThreshold))
			assert.Equal(t, tt.wantFeatures, got.Features)
		})
	}
}

func TestScoreTitle_Empty(t *testing.T) {
	got := ScoreTitle("   ", taxonomy.MustDefault())
	assert.Zero(t, got.Score)
	assert.Empty(t, got.Features)
}

func TestTitleRules_Table(t *testing.T) {
	weights := map[TitleFeature]int{}
	for _, rule := range titleRules {
		weights[rule.feature] = rule.weight
	}
	assert.Len(t, weights, len(titleRules), "features are unique")
	assert.Equal(t, -40, weights[FeatureEndsWithPeriod])
	assert.Equal(t, 25, weights[FeatureProjectNoun])
	assert.Equal(t, -20, weights[FeatureBullet])
}

func TestScoreTitle_Bullet(t *testing.T) {
	tax := taxonomy.MustDefault()

	plain := ScoreTitle("Real-time messaging with WebSockets", tax)
	bulleted := ScoreTitle("• Real-time messaging with WebSockets", tax)
	assert.Equal(t, plain.Score-20, bulleted.Score)
	assert.Contains(t, bulleted.Features, FeatureBullet)
	assert.False(t, bulleted.IsTitle(DefaultTitleThreshold))

	// the remaining rules still see the words after the bullet
	assert.Contains(t, ScoreTitle("- Developed a REST API", tax).Features, FeatureActionVerb)
}
