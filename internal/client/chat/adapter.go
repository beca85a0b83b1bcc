package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/GregMSThompson/chat-client/internal/dto"
	"github.com/GregMSThompson/chat-client/internal/errs"
	"github.com/GregMSThompson/chat-client/pkg/logger"
)

var errMissingResponse = errors.New("response field missing")

// wire shape with presence tracking, the backend may omit either field
type chatReply struct {
	Response *string `json:"response"`
	Error    string  `json:"error"`
}

type Adapter struct {
	client   *http.Client
	endpoint string
}

// NewAdapter posts prompts to endpoint. The client is used as given: no
// timeout or retry is layered on top.
func NewAdapter(client *http.Client, endpoint string) *Adapter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Adapter{
		client:   client,
		endpoint: endpoint,
	}
}

func (a *Adapter) Endpoint() string {
	return a.endpoint
}

// Send issues one POST with the prompt and decodes the reply. A non-2xx reply
// with an error field is a normal result; every other failure is an error.
func (a *Adapter) Send(ctx context.Context, prompt string) (dto.ChatResult, error) {
	log := logger.FromContext(ctx)
	out := dto.ChatResult{}

	body, err := json.Marshal(dto.ChatRequest{Prompt: prompt})
	if err != nil {
		return out, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return out, errs.NewTransportError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return out, errs.NewTransportError(err)
	}
	defer resp.Body.Close()
	out.Status = resp.StatusCode

	var reply chatReply
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, errs.NewTransportError(err)
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return out, errs.NewDecodeError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("chat request not ok", "status", resp.StatusCode, "error", reply.Error)
		if reply.Error != "" {
			out.Error = reply.Error
			return out, nil
		}
		return out, errs.NewAPIError(resp.StatusCode, statusText(resp))
	}

	if reply.Response == nil {
		return out, errs.NewDecodeError(errMissingResponse)
	}
	out.Response = *reply.Response
	return out, nil
}

// statusText is the reason phrase without the leading code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
