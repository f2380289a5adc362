package emotion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySingleEmotion(t *testing.T) {
	c := NewDefaultClassifier(nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		text      string
		dominant  Label
		intensity float64
	}{
		{"happy keyword", "היה מעולה, תודה", Happy, 1.0},
		{"frustrated keyword", "נמאס לי מהשירות", Frustrated, 0.8},
		{"urgent keyword", "צריכה תור דחוף", Urgent, 0.9},
		{"anxious keyword", "אני חוששת מהצבע", Anxious, 0.7},
		{"excited keyword", "אני כל כך מתרגש", Excited, 0.9},
		{"neutral keyword", "בסדר גמור", Neutral, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := c.Classify(ctx, tt.text)
			assert.Equal(t, tt.dominant, profile.Dominant)
			assert.InDelta(t, tt.intensity, profile.Intensity, 1e-9)
		})
	}
}

func TestClassifyAccumulatesMatches(t *testing.T) {
	c := NewDefaultClassifier(nil)

	// Two frustrated keywords in one message double the score.
	profile := c.Classify(context.Background(), "נמאס לי, זה פשוט גרוע")

	assert.Equal(t, Frustrated, profile.Dominant)
	assert.InDelta(t, 1.6, profile.Intensity, 1e-9)
	assert.InDelta(t, 1.6, profile.Scores[Frustrated], 1e-9)
}

func TestClassifyTieKeepsEarlierRule(t *testing.T) {
	rules := []Rule{
		{Label: Happy, Weight: 1.0, Keywords: []string{"aaa"}},
		{Label: Excited, Weight: 1.0, Keywords: []string{"bbb"}},
	}
	c := NewClassifier(rules, DefaultPolicy(), nil)

	// Both rules score 1.0. The earlier rule wins the tie.
	profile := c.Classify(context.Background(), "aaa bbb")

	assert.Equal(t, Happy, profile.Dominant)
	assert.InDelta(t, 1.0, profile.Intensity, 1e-9)
}

func TestClassifyNoMatchFloor(t *testing.T) {
	c := NewDefaultClassifier(nil)

	for _, text := range []string{"", "xyz", "message with no keywords"} {
		profile := c.Classify(context.Background(), text)
		assert.Equal(t, Neutral, profile.Dominant, "text %q", text)
		assert.InDelta(t, 0.1, profile.Intensity, 1e-9, "text %q", text)
		assert.False(t, profile.NeedsHuman, "text %q", text)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	rules := []Rule{{Label: Happy, Weight: 1.0, Keywords: []string{"Great"}}}
	c := NewClassifier(rules, DefaultPolicy(), nil)

	profile := c.Classify(context.Background(), "that was GREAT")
	assert.Equal(t, Happy, profile.Dominant)
}

func TestEscalationPolicyGate(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name      string
		dominant  Label
		intensity float64
		want      bool
	}{
		{"frustrated above threshold", Frustrated, 0.8, true},
		{"anxious above threshold", Anxious, 0.7, true},
		{"frustrated at threshold stays", Frustrated, 0.5, false},
		{"anxious below threshold", Anxious, 0.3, false},
		{"urgent never escalates", Urgent, 0.9, false},
		{"happy never escalates", Happy, 2.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.NeedsHuman(tt.dominant, tt.intensity))
		})
	}
}

func TestClassifySetsNeedsHuman(t *testing.T) {
	c := NewDefaultClassifier(nil)

	escalated := c.Classify(context.Background(), "נמאס לי מהשירות")
	assert.True(t, escalated.NeedsHuman)

	calm := c.Classify(context.Background(), "תודה רבה, היה מעולה")
	assert.False(t, calm.NeedsHuman)
}

func TestClassifyScoresAllRules(t *testing.T) {
	c := NewDefaultClassifier(nil)

	profile := c.Classify(context.Background(), "שלום")

	// Every rule gets a score entry, matched or not.
	assert.Len(t, profile.Scores, len(DefaultRules()))
}
