package assist

import (
    "context"
    "errors"
    "testing"

    openai "github.com/sashabaranov/go-openai"
)

type fakeClient struct {
    lastReq openai.ChatCompletionRequest
    reply   string
    fails   int
}

func (c *fakeClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
    c.lastReq = req
    if c.fails > 0 {
        c.fails--
        return openai.ChatCompletionResponse{}, errors.New("backend down")
    }
    return openai.ChatCompletionResponse{
        Choices: []openai.ChatCompletionChoice{{
            Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: c.reply},
        }},
    }, nil
}

func TestReformat_ReturnsSuggestion(t *testing.T) {
    client := &fakeClient{reply: "Smith, J (2020) *A Book*. Press."}
    r := &Reformatter{Client: client, Model: "test-model"}

    got, err := r.Reformat(context.Background(), "Smith J, A Book, Press 2020")
    if err != nil {
        t.Fatalf("Reformat: %v", err)
    }
    if got != "Smith, J (2020) *A Book*. Press." {
        t.Fatalf("got %q", got)
    }
    if client.lastReq.Model != "test-model" {
        t.Fatalf("model not propagated: %q", client.lastReq.Model)
    }
    if len(client.lastReq.Messages) != 2 || client.lastReq.Messages[1].Content != "Smith J, A Book, Press 2020" {
        t.Fatalf("entry not sent as user message: %#v", client.lastReq.Messages)
    }
}

func TestReformat_RetriesOnce(t *testing.T) {
    client := &fakeClient{reply: "Ok entry.", fails: 1}
    r := &Reformatter{Client: client, Model: "test-model"}
    if _, err := r.Reformat(context.Background(), "anything"); err != nil {
        t.Fatalf("expected retry to succeed, got %v", err)
    }
}

func TestReformat_RejectsMultilineSuggestion(t *testing.T) {
    client := &fakeClient{reply: "line one\nline two"}
    r := &Reformatter{Client: client, Model: "test-model"}
    if _, err := r.Reformat(context.Background(), "anything"); err == nil {
        t.Fatal("expected multiline suggestion rejected")
    }
}

func TestReformat_NotConfigured(t *testing.T) {
    var r *Reformatter
    if _, err := r.Reformat(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
        t.Fatalf("expected ErrNotConfigured, got %v", err)
    }
    r = &Reformatter{}
    if _, err := r.Reformat(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
        t.Fatalf("expected ErrNotConfigured, got %v", err)
    }
}
