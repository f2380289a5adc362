package respond

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/yaronsalon/salon-ai-assistant/internal/directory"
	"github.com/yaronsalon/salon-ai-assistant/internal/emotion"
	"github.com/yaronsalon/salon-ai-assistant/internal/intent"
	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

var composerTracer = otel.Tracer("salon/response-composer")

// Composer assembles templated replies from the salon catalog, the
// detected emotion, and the optional customer record.
type Composer struct {
	catalog Catalog
	phrases map[emotion.Label]PhraseSet
	pick    Picker
	logger  *logging.Logger
}

// NewComposer creates a composer over the given catalog and phrase sets.
// A nil picker defaults to uniform random selection.
func NewComposer(catalog Catalog, phrases map[emotion.Label]PhraseSet, pick Picker, logger *logging.Logger) *Composer {
	if pick == nil {
		pick = RandomPicker
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Composer{
		catalog: catalog,
		phrases: phrases,
		pick:    pick,
		logger:  logger,
	}
}

// NewDefaultComposer creates a composer with the salon defaults.
func NewDefaultComposer(logger *logging.Logger) *Composer {
	return NewComposer(DefaultCatalog(), DefaultPhrases(), nil, logger)
}

// Compose produces the reply for a classified message. Escalation has
// absolute precedence: when the profile needs a human, the intent is
// ignored. The message text is consulted only by the price branch, to
// match a specific treatment. customer may be nil.
func (c *Composer) Compose(ctx context.Context, message string, in intent.Intent, profile emotion.Profile, customer *directory.Customer) string {
	_, span := composerTracer.Start(ctx, "respond.compose")
	defer span.End()
	span.SetAttributes(
		attribute.String("respond.intent", string(in)),
		attribute.String("respond.emotion", string(profile.Dominant)),
	)

	if profile.NeedsHuman {
		span.SetAttributes(attribute.Bool("respond.escalated", true))
		return c.Escalation(profile)
	}

	var body string
	switch in {
	case intent.Greeting:
		body = c.greeting(profile, customer)
	case intent.Price:
		body = c.priceInquiry(message, profile)
	case intent.Location:
		body = c.location(profile)
	case intent.Appointment:
		body = c.appointment(profile)
	default:
		body = c.fallback(profile)
	}

	return body + "\n\n" + c.footer()
}

// Escalation produces the human-handoff reply used both for emotional
// escalation and as the degraded reply when composition fails.
func (c *Composer) Escalation(profile emotion.Profile) string {
	return fmt.Sprintf(`%s

המערכת החכמה שלנו העבירה אותך למענה אנושי לטיפול מקצועי ואישי.

🕐 זמן תגובה משוער: %s

📞 לעניין דחוף: %s
📍 %s

%s 🌹`,
		c.pickGreeting(profile.Dominant),
		c.catalog.ResponseWindow,
		c.catalog.Phone,
		c.catalog.Address,
		c.catalog.SalonName,
	)
}

func (c *Composer) greeting(profile emotion.Profile, customer *directory.Customer) string {
	tone := c.pickGreeting(profile.Dominant)
	if customer != nil && customer.Name != "" {
		return fmt.Sprintf("%s\n\nשלום %s! 💫 שמחה לראות אותך שוב במספרה!\n\nאיך אפשר לעזור לך היום? 😊", tone, customer.Name)
	}
	return fmt.Sprintf("%s\n\nאני העוזרת הדיגיטלית של %s 💫\n\nלפני שנתחיל, איך קוראים לך? 😊", tone, c.catalog.AssistantName)
}

func (c *Composer) priceInquiry(message string, profile emotion.Profile) string {
	tone := c.pickGreeting(profile.Dominant)

	if item, ok := c.matchTreatment(message); ok {
		return fmt.Sprintf("%s\n\n💇 %s: %d₪\n\nרוצה לקבוע תור? 📅", tone, item.Treatment, item.Price)
	}

	var b strings.Builder
	b.WriteString(tone)
	b.WriteString("\n\n💰 מחירון עיקרי:\n")
	for _, item := range c.catalog.Prices {
		fmt.Fprintf(&b, "\n• %s - %d₪", item.Treatment, item.Price)
	}
	b.WriteString("\n\nרוצה לקבוע תור? 📅")
	return b.String()
}

// matchTreatment finds the single treatment a message asks about:
// case-insensitive containment of the full treatment name, then of its
// leading word, in price-list order. First match wins.
func (c *Composer) matchTreatment(message string) (PriceItem, bool) {
	normalized := strings.ToLower(message)
	for _, item := range c.catalog.Prices {
		name := strings.ToLower(item.Treatment)
		if strings.Contains(normalized, name) {
			return item, true
		}
	}
	for _, item := range c.catalog.Prices {
		leading, _, _ := strings.Cut(strings.ToLower(item.Treatment), " ")
		if leading != "" && strings.Contains(normalized, leading) {
			return item, true
		}
	}
	return PriceItem{}, false
}

func (c *Composer) location(profile emotion.Profile) string {
	var b strings.Builder
	b.WriteString(c.pickGreeting(profile.Dominant))
	b.WriteString("\n\n📍 מיקום המספרה:\n\n")
	fmt.Fprintf(&b, "🏢 %s\n", c.catalog.Address)
	fmt.Fprintf(&b, "🅿️ %s\n", c.catalog.ParkingNote)
	b.WriteString("\n🕛 שעות פעילות:")
	for _, row := range c.catalog.Hours {
		fmt.Fprintf(&b, "\n• %s: %s", row.Days, row.Times)
	}
	fmt.Fprintf(&b, "\n\n📞 לתיאום תורים: %s", c.catalog.Phone)
	fmt.Fprintf(&b, "\n\n📸 לתוצאות ועבודות: %s באינסטגרם", c.catalog.Instagram)
	return b.String()
}

func (c *Composer) appointment(profile emotion.Profile) string {
	return fmt.Sprintf(`%s

📅 קביעת תור:

לקביעת תור אנא פנה ישירות:
📞 %s

או שלח הודעה עם הפרטים הבאים:
• שם מלא
• יום מועדף
• שעה מועדפת
• סוג הטיפול

🕛 %s`,
		c.pickGreeting(profile.Dominant),
		c.catalog.Phone,
		c.catalog.HoursNote,
	)
}

func (c *Composer) fallback(profile emotion.Profile) string {
	return fmt.Sprintf(`%s

איך אפשר לעזור לך היום? 😊

אני יכולה לעזור לך עם:
✅ מידע על טיפולים ומחירים
✅ קביעת תורים
✅ מיקום ושעות פעילות

%s`,
		c.pickGreeting(profile.Dominant),
		c.pickClosing(profile.Dominant),
	)
}

func (c *Composer) footer() string {
	return fmt.Sprintf("📍 %s | 📞 %s", c.catalog.Address, c.catalog.Phone)
}
