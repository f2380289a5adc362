package respond

import (
	"math/rand"

	"github.com/yaronsalon/salon-ai-assistant/internal/emotion"
)

// PhraseSet holds the greeting and closing variants for one emotion.
type PhraseSet struct {
	Greeting []string
	Closing  []string
}

// Picker selects an index in [0, n). The default is uniform random; tests
// swap in a deterministic picker.
type Picker func(n int) int

// RandomPicker is the production phrase picker.
func RandomPicker(n int) int {
	return rand.Intn(n)
}

// FirstPicker always selects the first variant. Used in tests.
func FirstPicker(int) int {
	return 0
}

// DefaultPhrases returns the per-emotion tone phrases. Emotions without
// an entry fall back to neutral.
func DefaultPhrases() map[emotion.Label]PhraseSet {
	return map[emotion.Label]PhraseSet{
		emotion.Happy: {
			Greeting: []string{"איזה כיף לשמוע שאת מרוצה! 😊", "זה נהדר! 💫", "שמחה לשמוע! ✨"},
			Closing:  []string{"נשמח לראות אותך שוב! 💕", "תמיד בשמחה! 🌟"},
		},
		emotion.Frustrated: {
			Greeting: []string{"אני מבינה את התסכול שלך 😔", "בואי נפתור את זה ביחד 💪", "אני כאן לעזור לך 🤗"},
			Closing:  []string{"אנחנו נדאג שהכל יהיה בסדר 💯", "השירות שלנו בראש סדר העדיפויות 🎯"},
		},
		emotion.Neutral: {
			Greeting: []string{"שלום! איך אפשר לעזור? 😊", "שמחה לעזור! 💫", "מה נשמע? 🌟"},
			Closing:  []string{"נשמח לעזור לך! 😊", "תמיד כאן בשבילך! 🌟"},
		},
	}
}

func (c *Composer) pickGreeting(label emotion.Label) string {
	return c.pickPhrase(label, true)
}

func (c *Composer) pickClosing(label emotion.Label) string {
	return c.pickPhrase(label, false)
}

func (c *Composer) pickPhrase(label emotion.Label, greeting bool) string {
	set, ok := c.phrases[label]
	if !ok {
		set = c.phrases[emotion.Neutral]
	}
	variants := set.Closing
	if greeting {
		variants = set.Greeting
	}
	if len(variants) == 0 {
		return ""
	}
	return variants[c.pick(len(variants))]
}
