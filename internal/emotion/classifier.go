package emotion

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

var emotionTracer = otel.Tracer("salon/emotion-classifier")

// Label identifies a detected emotion.
type Label string

const (
	Happy      Label = "happy"
	Frustrated Label = "frustrated"
	Urgent     Label = "urgent"
	Anxious    Label = "anxious"
	Excited    Label = "excited"
	Neutral    Label = "neutral"
)

// noMatchFloor is reported as intensity when no keyword matched, so a
// silent message is distinguishable from a classifier that never ran.
const noMatchFloor = 0.1

// Rule binds an emotion label to its keyword set and per-keyword weight.
// Rules are evaluated in slice order; an earlier rule keeps the dominant
// slot on a tied score.
type Rule struct {
	Label    Label
	Keywords []string
	Weight   float64
}

// Profile is the scoring result for a single message.
type Profile struct {
	Dominant   Label             `json:"dominant_emotion"`
	Scores     map[Label]float64 `json:"scores"`
	Intensity  float64           `json:"intensity"`
	NeedsHuman bool              `json:"needs_human"`
}

// EscalationPolicy decides when a profile requires a human reply.
// Kept separate from scoring so the gate is testable on its own.
type EscalationPolicy struct {
	Emotions  []Label
	Threshold float64
}

// NeedsHuman reports whether the dominant emotion and intensity cross
// the escalation gate.
func (p EscalationPolicy) NeedsHuman(dominant Label, intensity float64) bool {
	if intensity <= p.Threshold {
		return false
	}
	for _, label := range p.Emotions {
		if label == dominant {
			return true
		}
	}
	return false
}

// DefaultPolicy escalates frustrated and anxious customers once the
// score clears 0.5.
func DefaultPolicy() EscalationPolicy {
	return EscalationPolicy{
		Emotions:  []Label{Frustrated, Anxious},
		Threshold: 0.5,
	}
}

// DefaultRules returns the salon's Hebrew keyword table. Order matters:
// it is the tie-break order for equal scores.
func DefaultRules() []Rule {
	return []Rule{
		{Label: Happy, Weight: 1.0, Keywords: []string{
			"שמח", "מעולה", "נהדר", "אהבתי", "מרוצה", "מושלם", "תודה רבה", "😊", "😍", "💕", "איזה כיף",
		}},
		{Label: Frustrated, Weight: 0.8, Keywords: []string{
			"נמאס", "עצבני", "לא מרוצה", "בעיה", "זוועה", "גרוע", "לא טוב", "אכזבה", "בלגן", "לא בסדר",
		}},
		{Label: Urgent, Weight: 0.9, Keywords: []string{
			"דחוף", "מהר", "בהקדם", "חירום", "מיידי", "עכשיו", "היום", "לא יכול לחכות", "צריך עכשיו",
		}},
		{Label: Anxious, Weight: 0.7, Keywords: []string{
			"חוששת", "מודאגת", "לא בטוח", "פחד", "דאגה", "מפחדת", "מתוח", "לחוץ", "מלחיץ",
		}},
		{Label: Excited, Weight: 0.9, Keywords: []string{
			"נרגש", "מתרגש", "בקרוב", "סוף סוף", "יאללה", "💃", "🔥", "ווואו",
		}},
		{Label: Neutral, Weight: 0.3, Keywords: []string{
			"רגיל", "בסדר", "אוקיי", "טוב", "סביר",
		}},
	}
}

// Classifier scores free text against an ordered emotion rule table.
type Classifier struct {
	rules  []Rule
	policy EscalationPolicy
	logger *logging.Logger
}

// NewClassifier creates a classifier over the given rule table and
// escalation policy.
func NewClassifier(rules []Rule, policy EscalationPolicy, logger *logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &Classifier{
		rules:  rules,
		policy: policy,
		logger: logger,
	}
}

// NewDefaultClassifier creates a classifier with the salon defaults.
func NewDefaultClassifier(logger *logging.Logger) *Classifier {
	return NewClassifier(DefaultRules(), DefaultPolicy(), logger)
}

// Classify scores the message and returns its emotion profile. Empty
// text yields an all-zero neutral profile. Classify never fails.
func (c *Classifier) Classify(ctx context.Context, text string) Profile {
	_, span := emotionTracer.Start(ctx, "emotion.classify")
	defer span.End()

	normalized := strings.ToLower(text)

	profile := Profile{
		Dominant: Neutral,
		Scores:   make(map[Label]float64, len(c.rules)),
	}

	maxScore := 0.0
	for _, rule := range c.rules {
		score := 0.0
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, strings.ToLower(keyword)) {
				score += rule.Weight
			}
		}
		profile.Scores[rule.Label] = score
		// Strictly greater, so the first rule to reach the maximum
		// keeps the dominant slot.
		if score > maxScore {
			maxScore = score
			profile.Dominant = rule.Label
		}
	}

	profile.Intensity = maxScore
	if maxScore == 0 {
		profile.Intensity = noMatchFloor
	}
	profile.NeedsHuman = c.policy.NeedsHuman(profile.Dominant, profile.Intensity)

	span.SetAttributes(
		attribute.String("emotion.dominant", string(profile.Dominant)),
		attribute.Float64("emotion.intensity", profile.Intensity),
		attribute.Bool("emotion.needs_human", profile.NeedsHuman),
	)

	return profile
}
