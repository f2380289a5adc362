package intent

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var intentTracer = otel.Tracer("salon/intent-classifier")

// Intent is the coarse conversational purpose of a message.
type Intent string

const (
	Greeting    Intent = "greeting"
	Price       Intent = "price_inquiry"
	Location    Intent = "location_inquiry"
	Appointment Intent = "appointment_request"
	Fallback    Intent = "fallback"
)

// Rule binds an intent to its keyword set. Rules are evaluated in slice
// order and the first match short-circuits, so a message containing both
// greeting and price keywords resolves to the earlier rule.
type Rule struct {
	Intent   Intent
	Keywords []string
}

// DefaultRules returns the salon's Hebrew intent rules. Priority order:
// greeting, price, location, appointment.
func DefaultRules() []Rule {
	return []Rule{
		{Intent: Greeting, Keywords: []string{"שלום", "היי", "הי", "בוקר טוב", "ערב טוב"}},
		{Intent: Price, Keywords: []string{"כמה", "מחיר", "עולה", "עלות", "מחירון"}},
		{Intent: Location, Keywords: []string{"איפה", "מיקום", "כתובת", "מגיעים", "הגעה", "שעות", "פתוח"}},
		{Intent: Appointment, Keywords: []string{"תור", "לקבוע", "לתאם", "פנוי", "זמין"}},
	}
}

// Classifier determines message intent by ordered keyword-set membership.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier over the given ordered rules.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// NewDefaultClassifier creates a classifier with the salon defaults.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultRules())
}

// Classify returns the first intent whose keyword set matches the
// normalized text, or Fallback. Classify never fails.
func (c *Classifier) Classify(ctx context.Context, text string) Intent {
	_, span := intentTracer.Start(ctx, "intent.classify")
	defer span.End()

	normalized := strings.ToLower(text)

	result := Fallback
	for _, rule := range c.rules {
		if containsAny(normalized, rule.Keywords) {
			result = rule.Intent
			break
		}
	}

	span.SetAttributes(attribute.String("intent.result", string(result)))
	return result
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
