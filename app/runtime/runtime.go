package runtime

import (
	"context"
	"log"
	"time"

	"PeaceScapeAI/app/fengshui"
	"PeaceScapeAI/app/images"
	"PeaceScapeAI/app/models"
	"PeaceScapeAI/app/report"
	"PeaceScapeAI/app/storage"
)

const (
	// UsageMessage is sent when a message arrives without a photo.
	UsageMessage = "Send a photo of a room or space, along with your birth year, " +
		"and I'll provide Feng Shui recommendations tailored to your element."
	// FailureMessage is sent when the vision service is unavailable.
	FailureMessage = "❌ Sorry, something went wrong. Please try again later."
)

// Runtime processes analysis requests one at a time off a buffered event
// queue. Chat clients queue events; nothing is shared between requests.
type Runtime struct {
	model     models.Interface
	processor *images.Processor
	db        storage.Interface
	events    chan Event
}

func New(model models.Interface, processor *images.Processor, db storage.Interface) *Runtime {
	return &Runtime{
		model:     model,
		processor: processor,
		db:        db,
		events:    make(chan Event, 100),
	}
}

func (r *Runtime) QueueEvent(event Event) {
	select {
	case r.events <- event:
	default:
		log.Print("⚠️ Event queue is full, dropping event")
	}
}

func (r *Runtime) Start() {
	for ev := range r.events {
		r.handleEvent(ev)
	}
}

func (r *Runtime) handleEvent(ev Event) {
	req := ev.Request
	if req == nil {
		return
	}
	ctx := context.Background()

	if len(req.Image) == 0 {
		r.reply(req, UsageMessage)
		return
	}

	imageB64, userMsg, err := r.processor.Process(req.Image)
	if err != nil {
		log.Printf("❌ Error processing image for request %s: %v", req.ID, err)
		r.reply(req, FailureMessage)
		return
	}
	if userMsg != "" {
		r.reply(req, "⚠️ "+userMsg)
		return
	}

	r.progress(req, "🔍 Describing the space...")
	analysisText, err := r.model.DescribeImage(ctx, imageB64)
	if err != nil {
		log.Printf("❌ Vision analysis failed for request %s: %v", req.ID, err)
		r.reply(req, FailureMessage)
		return
	}

	birthYear := fengshui.ParseBirthYear(req.Caption)
	element := fengshui.ElementForBirthYear(birthYear)

	r.progress(req, "✨ Generating Feng Shui recommendations...")
	recommendations, err := r.model.GenerateRecommendations(ctx, analysisText, string(element))
	if err != nil {
		log.Printf("❌ Recommendation generation failed for request %s: %v", req.ID, err)
		r.reply(req, FailureMessage)
		return
	}

	r.reply(req, report.Render(recommendations, element))

	if r.db == nil {
		return
	}
	saveErr := r.db.SaveAnalysis(ctx, storage.Analysis{
		ID:          req.ID,
		Platform:    req.Platform,
		ChatID:      req.ChatID,
		BirthYear:   birthYear,
		Element:     string(element),
		Description: analysisText,
		CreatedAt:   time.Now(),
	})
	if saveErr != nil {
		log.Printf("⚠️ Error saving analysis %s: %v", req.ID, saveErr)
	}
}

// History returns the most recent analyses for one chat, newest first.
func (r *Runtime) History(ctx context.Context, platform, chatID string, limit int) ([]storage.Analysis, error) {
	if r.db == nil {
		return nil, nil
	}
	return r.db.RecentAnalyses(ctx, platform, chatID, limit)
}

func (r *Runtime) reply(req *Request, text string) {
	if req.Respond == nil {
		return
	}
	if err := req.Respond(text); err != nil {
		log.Printf("⚠️ Error sending reply for request %s: %v", req.ID, err)
	}
}

func (r *Runtime) progress(req *Request, text string) {
	if req.Progress != nil {
		req.Progress(text)
	}
}
