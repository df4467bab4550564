package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/assist"
	"github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/extract"
	"github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/harvard"
	"github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/llm"
	"github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/render"
)

// App wires extraction, the citation pipeline, the optional LLM assist, and
// rendering together for both the CLI and the HTTP service.
type App struct {
	cfg      Config
	reformat *assist.Reformatter
}

func New(ctx context.Context, cfg Config) (*App, error) {
	if cfg.StyleLabel == "" {
		cfg.StyleLabel = DefaultStyle
	}
	for _, dir := range []string{cfg.UploadDir, cfg.OutputDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	a := &App{cfg: cfg}
	if cfg.LLMModel != "" && cfg.LLMBaseURL != "" {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		transportCfg.BaseURL = cfg.LLMBaseURL
		provider := &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)}
		a.reformat = &assist.Reformatter{Client: provider, Model: cfg.LLMModel}

		// Preflight is best-effort: a dead backend downgrades assist to the
		// rule-based fallback instead of failing startup.
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if _, err := provider.ListModels(pctx); err != nil {
			log.Warn().Err(err).Msg("LLM model list failed; assist stays best-effort")
		} else {
			log.Info().Str("model", cfg.LLMModel).Msg("reference assist enabled")
		}
	}
	return a, nil
}

func (a *App) Close() {
	// nothing yet
}

// FormatText runs the citation pipeline over text and, when an assist backend
// is configured, swaps in model suggestions for reference entries the
// matchers could not classify. Assist failures only log; the rule-based
// output always stands on its own.
func (a *App) FormatText(ctx context.Context, text string) string {
	out := harvard.Process(text)
	if a.reformat == nil {
		return out
	}
	// Unclassified entries are detected against the original text; their
	// cleaned-up form is what appears in the processed output. An entry the
	// URL stage rewrote further simply fails the substitution and is kept.
	for _, entry := range harvard.UnclassifiedEntries(text) {
		suggestion, err := a.reformat.Reformat(ctx, entry)
		if err != nil {
			log.Warn().Err(err).Str("entry", entry).Msg("assist reformat failed")
			continue
		}
		if suggestion != entry {
			out = strings.Replace(out, entry, suggestion, 1)
		}
	}
	return out
}

// Run is the CLI path: extract the input document, format it, and write the
// result. An output path ending in .txt gets the processed plain text;
// anything else gets the styled PDF.
func (a *App) Run(ctx context.Context) error {
	text, err := extract.File(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("extract %s: %w", a.cfg.InputPath, err)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text extracted from %s", a.cfg.InputPath)
	}

	processed := a.FormatText(ctx, text)

	if strings.HasSuffix(strings.ToLower(a.cfg.OutputPath), ".txt") {
		if err := os.WriteFile(a.cfg.OutputPath, []byte(processed+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", a.cfg.OutputPath, err)
		}
	} else {
		if err := render.WritePDF(documentTitle(a.cfg.StyleLabel), processed, a.cfg.OutputPath); err != nil {
			return err
		}
	}
	log.Info().Str("input", a.cfg.InputPath).Str("output", a.cfg.OutputPath).Msg("document formatted")
	return nil
}

// documentTitle builds the title line from the opaque style label.
func documentTitle(style string) string {
	if strings.TrimSpace(style) == "" {
		style = DefaultStyle
	}
	return style + " Style Formatted Document"
}
