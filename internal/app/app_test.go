package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/assist"
	"github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/harvard"
)

type scriptedClient struct {
	reply string
	calls int
}

func (c *scriptedClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.calls++
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: c.reply},
		}},
	}, nil
}

func TestFormatText_WithoutAssistMatchesPipeline(t *testing.T) {
	a := &App{cfg: Config{StyleLabel: DefaultStyle}}
	in := "See (Smith & Jones 2020) and https://www.example.com/x here."
	if got, want := a.FormatText(context.Background(), in), harvard.Process(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatText_AssistRewritesUnclassifiedEntry(t *testing.T) {
	client := &scriptedClient{reply: "Odd, X (1990) *Scroll*. Archive."}
	a := &App{
		cfg:      Config{StyleLabel: DefaultStyle},
		reformat: &assist.Reformatter{Client: client, Model: "test-model"},
	}
	in := "References\n" +
		"Brown, T. (2018). Deep Learning Basics. MIT Press.\n" +
		"Odd scroll from the archive, undated"
	got := a.FormatText(context.Background(), in)
	if !strings.Contains(got, "Odd, X (1990) *Scroll*. Archive.") {
		t.Fatalf("expected assist suggestion applied, got %q", got)
	}
	if !strings.Contains(got, "Brown, T (2018) *Deep Learning Basics*. MIT Press.") {
		t.Fatalf("expected classified entry untouched by assist, got %q", got)
	}
	if client.calls != 1 {
		t.Fatalf("expected one assist call, got %d", client.calls)
	}
}

func TestRun_WritesProcessedText(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "paper.txt")
	out := filepath.Join(dir, "formatted.txt")
	body := "Intro (Smith & Jones 2020).\n\nReferences\nSmith, J. (2020). A Title. Journal, 5(2), 10-20.\n"
	if err := os.WriteFile(in, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := New(context.Background(), Config{InputPath: in, OutputPath: out})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	if !strings.Contains(got, "(Smith and Jones, 2020)") {
		t.Fatalf("in-text citation not fixed: %q", got)
	}
	if !strings.Contains(got, "Smith, J (2020) 'A Title', *Journal*, 5(2), pp. 10-20.") {
		t.Fatalf("reference entry not fixed: %q", got)
	}
}

func TestRun_EmptyDocumentFails(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(in, []byte("   \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := New(context.Background(), Config{InputPath: in, OutputPath: filepath.Join(dir, "out.txt")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Run(context.Background()); err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestDocumentTitle(t *testing.T) {
	if got := documentTitle(""); got != "Harvard Style Formatted Document" {
		t.Fatalf("got %q", got)
	}
	if got := documentTitle("APA"); got != "APA Style Formatted Document" {
		t.Fatalf("got %q", got)
	}
}
