package conversation

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/yaronsalon/salon-ai-assistant/internal/directory"
	"github.com/yaronsalon/salon-ai-assistant/internal/emotion"
	"github.com/yaronsalon/salon-ai-assistant/internal/intent"
	"github.com/yaronsalon/salon-ai-assistant/internal/observability/metrics"
	"github.com/yaronsalon/salon-ai-assistant/internal/respond"
	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

var serviceTracer = otel.Tracer("salon/conversation-service")

// intentEscalated is the metrics label used when emotional escalation
// short-circuits intent routing.
const intentEscalated = "escalated"

// Result is the outward contract of the pipeline: the caller always
// receives a displayable response.
type Result struct {
	ResponseText    string        `json:"response"`
	DominantEmotion emotion.Label `json:"emotion"`
	Intensity       float64       `json:"intensity"`
	NeedsHuman      bool          `json:"needs_human"`
	Intent          intent.Intent `json:"intent"`
	Timestamp       time.Time     `json:"timestamp"`
}

// Service runs the message-understanding and response-generation
// pipeline: emotion, intent, composition, logging.
type Service struct {
	emotions *emotion.Classifier
	intents  *intent.Classifier
	composer *respond.Composer
	dir      *directory.Directory
	recorder Recorder
	metrics  *metrics.BotMetrics
	logger   *logging.Logger
}

// NewService wires the pipeline. recorder and botMetrics may be nil.
func NewService(
	emotions *emotion.Classifier,
	intents *intent.Classifier,
	composer *respond.Composer,
	dir *directory.Directory,
	recorder Recorder,
	botMetrics *metrics.BotMetrics,
	logger *logging.Logger,
) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		emotions: emotions,
		intents:  intents,
		composer: composer,
		dir:      dir,
		recorder: recorder,
		metrics:  botMetrics,
		logger:   logger,
	}
}

// HandleMessage classifies one inbound message and returns the composed
// reply. It never fails for well-typed input: a panic while composing
// degrades to the escalation template.
func (s *Service) HandleMessage(ctx context.Context, phone, message string) Result {
	ctx, span := serviceTracer.Start(ctx, "conversation.handle_message")
	defer span.End()

	start := time.Now()

	profile := s.emotions.Classify(ctx, message)

	var (
		in          intent.Intent
		intentLabel = intentEscalated
	)
	if !profile.NeedsHuman {
		in = s.intents.Classify(ctx, message)
		intentLabel = string(in)
	}

	var customer *directory.Customer
	if c, ok := s.dir.Lookup(phone); ok {
		customer = &c
		s.logger.Debug("customer matched", "name", c.Name)
	}

	response := s.compose(ctx, message, in, profile, customer)

	result := Result{
		ResponseText:    response,
		DominantEmotion: profile.Dominant,
		Intensity:       profile.Intensity,
		NeedsHuman:      profile.NeedsHuman,
		Intent:          in,
		Timestamp:       time.Now().UTC(),
	}

	if s.recorder != nil {
		entry := Entry{
			Phone:     phone,
			Message:   message,
			Response:  response,
			Emotion:   profile.Dominant,
			Timestamp: result.Timestamp,
		}
		// Best-effort log; a failed append never blocks the reply.
		if err := s.recorder.Record(ctx, entry); err != nil {
			s.logger.Warn("conversation log append failed", "error", err)
		}
	}

	s.metrics.ObserveMessage(intentLabel, string(profile.Dominant), time.Since(start).Seconds())
	if profile.NeedsHuman {
		s.metrics.ObserveEscalation()
	}

	span.SetAttributes(
		attribute.String("message.intent", intentLabel),
		attribute.String("message.emotion", string(profile.Dominant)),
		attribute.Bool("message.needs_human", profile.NeedsHuman),
	)
	s.logger.Info("message handled",
		"phone", phone,
		"intent", intentLabel,
		"emotion", profile.Dominant,
		"intensity", profile.Intensity,
		"needs_human", profile.NeedsHuman,
	)

	return result
}

// Snapshot exposes the analytics view for the stats surface.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	if s.recorder == nil {
		return Snapshot{EmotionStats: map[emotion.Label]int{}, Recent: []Entry{}}, nil
	}
	return s.recorder.Snapshot(ctx)
}

// CustomerCount reports the directory size for analytics.
func (s *Service) CustomerCount() int {
	if s.dir == nil {
		return 0
	}
	return s.dir.Size()
}

// compose shields the caller from template bugs: any panic degrades to
// the escalation reply so the customer still gets a displayable message.
func (s *Service) compose(ctx context.Context, message string, in intent.Intent, profile emotion.Profile, customer *directory.Customer) (response string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("composer panic, degrading to escalation reply", "panic", r)
			response = s.composer.Escalation(profile)
		}
	}()
	return s.composer.Compose(ctx, message, in, profile, customer)
}
