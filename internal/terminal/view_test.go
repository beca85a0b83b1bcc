package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/GregMSThompson/chat-client/internal/dto"
	"github.com/GregMSThompson/chat-client/internal/form"
	"github.com/GregMSThompson/chat-client/internal/messages"
	"github.com/GregMSThompson/chat-client/internal/render"
	"github.com/GregMSThompson/chat-client/pkg/helpers"
)

type stubChatClient struct {
	prompts []string
	replies map[string]dto.ChatResult
}

func (s *stubChatClient) Send(ctx context.Context, prompt string) (dto.ChatResult, error) {
	s.prompts = append(s.prompts, prompt)
	return s.replies[prompt], nil
}

func TestRunSubmitsEachLine(t *testing.T) {
	var out bytes.Buffer
	v := New(strings.NewReader("hello\nworld\n"), &out, messages.English)

	var prompts []string
	v.OnSubmit(func() { prompts = append(prompts, v.PromptValue()) })

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(prompts, ",") != "hello,world" {
		t.Fatalf("unexpected prompts %v", prompts)
	}
}

func TestRunSubmitsLinesLongerThanScannerDefault(t *testing.T) {
	long := strings.Repeat("a", 70*1024)
	var out bytes.Buffer
	v := New(strings.NewReader(long+"\nsecond\n"), &out, messages.English)

	var prompts []string
	v.OnSubmit(func() { prompts = append(prompts, v.PromptValue()) })

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prompts) != 2 || prompts[0] != long || prompts[1] != "second" {
		t.Fatalf("expected both lines submitted intact, got %d prompts", len(prompts))
	}
}

func TestRunIgnoresLinesWhileDisabled(t *testing.T) {
	var out bytes.Buffer
	v := New(strings.NewReader("one\ntwo\nthree\n"), &out, messages.English)

	var prompts []string
	v.OnSubmit(func() {
		prompts = append(prompts, v.PromptValue())
		if len(prompts) == 1 {
			v.SetSubmitEnabled(false)
		}
	})

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(prompts, ",") != "one" {
		t.Fatalf("expected lines after disabling to be ignored, got %v", prompts)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := New(strings.NewReader("hello\n"), new(bytes.Buffer), messages.English)
	called := false
	v.OnSubmit(func() { called = true })

	if err := v.Run(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run after cancellation")
	}
}

func TestViewWithController(t *testing.T) {
	var out bytes.Buffer
	v := New(strings.NewReader("   \n# title please\nfail\n"), &out, messages.English)
	client := &stubChatClient{replies: map[string]dto.ChatResult{
		"# title please": {Status: 200, Response: "# Title\n\nbody text"},
		"fail":           {Status: 400, Error: "Rate limited"},
	}}
	c := form.NewController(v, client, render.NewMarkdown(), messages.English, nil)
	ctx := helpers.TestCtx()
	c.Bind(ctx)

	if err := v.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"! " + messages.English.EmptyPrompt,
		messages.English.Loading,
		"# Title\n\nbody text",
		"Rate limited",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if len(client.prompts) != 2 {
		t.Fatalf("expected two requests, got %v", client.prompts)
	}
	if !v.SubmitEnabled() {
		t.Fatalf("submit left disabled")
	}
}
