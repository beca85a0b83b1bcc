package form

import (
	"context"
	"strings"
	"time"

	"github.com/GregMSThompson/chat-client/internal/dto"
	"github.com/GregMSThompson/chat-client/internal/errs"
	"github.com/GregMSThompson/chat-client/internal/messages"
	"github.com/GregMSThompson/chat-client/pkg/logger"
)

// View is the page as the controller sees it. Implementations own the
// elements; the controller only reads the prompt and toggles state.
type View interface {
	PromptValue() string
	Alert(message string)
	SetSubmitEnabled(enabled bool)
	SetLoading(visible bool)
	SetResponseText(text string)
	SetResponseHTML(markup string)
	OnSubmit(handler func())
}

type chatClient interface {
	Send(ctx context.Context, prompt string) (dto.ChatResult, error)
}

type renderer interface {
	Render(md string) string
}

type recorder interface {
	SetSubmitting(submitting bool)
	Observe(outcome string, elapsed time.Duration)
}

type Controller struct {
	View     View
	Client   chatClient
	Renderer renderer
	Messages messages.Catalogue
	Metrics  recorder
}

func NewController(view View, client chatClient, r renderer, msgs messages.Catalogue, rec recorder) *Controller {
	if rec == nil {
		rec = noopRecorder{}
	}
	return &Controller{
		View:     view,
		Client:   client,
		Renderer: r,
		Messages: msgs,
		Metrics:  rec,
	}
}

// Bind attaches the submission listener. It is the only setup step; ctx
// lives as long as the page does.
func (c *Controller) Bind(ctx context.Context) {
	c.View.OnSubmit(func() {
		c.Submit(ctx)
	})
}

// Submit handles one form submission end to end and reports how it ended.
// Once the form has been disabled it is re-enabled on every return path.
func (c *Controller) Submit(ctx context.Context) Outcome {
	log, ctx := logger.WithSubmission(ctx)

	prompt := strings.TrimSpace(c.View.PromptValue())
	if prompt == "" {
		log.Debug("submission rejected", "error", errs.NewValidationError("prompt is empty"))
		c.View.Alert(c.Messages.EmptyPrompt)
		c.Metrics.Observe(OutcomeRejected.String(), 0)
		return OutcomeRejected
	}

	c.View.SetSubmitEnabled(false)
	c.View.SetLoading(true)
	c.View.SetResponseText("")
	c.Metrics.SetSubmitting(true)

	start := time.Now()
	outcome := OutcomeFailed
	defer func() {
		c.View.SetSubmitEnabled(true)
		c.View.SetLoading(false)
		c.Metrics.SetSubmitting(false)
		c.Metrics.Observe(outcome.String(), time.Since(start))
	}()

	outcome = c.exchange(ctx, prompt)
	return outcome
}

func (c *Controller) exchange(ctx context.Context, prompt string) (outcome Outcome) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("chat submission panicked", "panic", r)
			c.View.SetResponseText(c.Messages.GenericFailure)
			outcome = OutcomeFailed
		}
	}()

	res, err := c.Client.Send(ctx, prompt)
	if err != nil {
		log.Error("failed to fetch chat response", "error", err)
		c.View.SetResponseText(c.Messages.GenericFailure)
		return OutcomeFailed
	}

	if res.Reported() {
		log.Warn("chat backend reported an error", "status", res.Status, "error", res.Error)
		c.View.SetResponseText(res.Error)
		return OutcomeReported
	}

	markup := c.Renderer.Render(res.Response)
	if logger.IsDebugEnabled(ctx) {
		log.Debug("rendered chat response", "status", res.Status, "markup", markup)
	}
	c.View.SetResponseHTML(markup)
	return OutcomeRendered
}

type noopRecorder struct{}

func (noopRecorder) SetSubmitting(bool) {}
func (noopRecorder) Observe(string, time.Duration) {}
