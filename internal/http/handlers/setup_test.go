package handlers

import (
	"github.com/yaronsalon/salon-ai-assistant/internal/conversation"
	"github.com/yaronsalon/salon-ai-assistant/internal/directory"
	"github.com/yaronsalon/salon-ai-assistant/internal/emotion"
	"github.com/yaronsalon/salon-ai-assistant/internal/intent"
	"github.com/yaronsalon/salon-ai-assistant/internal/respond"
)

func newTestService() *conversation.Service {
	composer := respond.NewComposer(respond.DefaultCatalog(), respond.DefaultPhrases(), respond.FirstPicker, nil)
	dir := directory.New([]directory.Customer{
		{Name: "דנה לוי", Phone: "0501234567"},
	})
	return conversation.NewService(
		emotion.NewDefaultClassifier(nil),
		intent.NewDefaultClassifier(),
		composer,
		dir,
		conversation.NewMemoryLog(),
		nil,
		nil,
	)
}
