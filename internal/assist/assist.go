// Package assist optionally reformats reference entries that the rule-based
// matchers could not classify, by asking an OpenAI-compatible model. It runs
// in the service layer after the pipeline; the pipeline itself never makes
// external calls.
package assist

import (
    "context"
    "errors"
    "fmt"
    "strings"

    openai "github.com/sashabaranov/go-openai"

    "github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/llm"
)

// ErrNotConfigured indicates no backend is wired; callers should skip assist.
var ErrNotConfigured = errors.New("assist backend not configured")

const systemPrompt = "You reformat bibliographic reference entries into Harvard style. " +
    "Respond with the reformatted entry only, on a single line, with no commentary. " +
    "If the entry is not a bibliographic reference, respond with it unchanged."

// Reformatter rewrites single reference entries via a chat model.
type Reformatter struct {
    Client llm.Client
    Model  string
}

// Reformat asks the model for a Harvard-style rendition of one entry. The
// suggestion must come back as a single non-empty line or it is rejected, so
// a chatty model can never corrupt the document.
func (r *Reformatter) Reformat(ctx context.Context, entry string) (string, error) {
    if r == nil || r.Client == nil || strings.TrimSpace(r.Model) == "" {
        return "", ErrNotConfigured
    }
    req := openai.ChatCompletionRequest{
        Model: r.Model,
        Messages: []openai.ChatCompletionMessage{
            {Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
            {Role: openai.ChatMessageRoleUser, Content: entry},
        },
        Temperature: 0.1,
        N:           1,
    }
    resp, err := r.Client.CreateChatCompletion(ctx, req)
    if err != nil {
        // One retry; transient failures are common with local backends.
        resp, err = r.Client.CreateChatCompletion(ctx, req)
        if err != nil {
            return "", fmt.Errorf("assist call (after retry): %w", err)
        }
    }
    if len(resp.Choices) == 0 {
        return "", errors.New("assist: empty response")
    }
    out := strings.TrimSpace(resp.Choices[0].Message.Content)
    if out == "" || strings.Contains(out, "\n") {
        return "", errors.New("assist: unusable suggestion")
    }
    return out, nil
}
