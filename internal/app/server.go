package app

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/extract"
	"github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/render"
)

// Handler returns the HTTP surface of the formatter: a health check and the
// multipart upload endpoint.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok\n")
	})
	mux.HandleFunc("/upload", a.handleUpload)
	return mux
}

// NewServer builds an http.Server around Handler with sane timeouts.
func (a *App) NewServer() *http.Server {
	return &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       time.Minute,
	}
}

// handleUpload accepts a multipart form with a "file" part and an optional
// "style" field, runs the document through extraction and the citation
// pipeline, and responds with the rendered PDF. Client mistakes (missing
// file, unsupported format, empty document) are 4xx; render and disk
// failures are 5xx.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, a.cfg.MaxUploadBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "missing file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	savedPath, err := a.saveUpload(file, header.Filename)
	if err != nil {
		log.Error().Err(err).Msg("save upload")
		http.Error(w, "could not store upload", http.StatusInternalServerError)
		return
	}

	text, err := extract.File(savedPath)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			http.Error(w, "unsupported document format", http.StatusBadRequest)
			return
		}
		log.Warn().Err(err).Str("file", header.Filename).Msg("extraction failed")
		http.Error(w, "could not read document", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(text) == "" {
		http.Error(w, "document contains no text", http.StatusBadRequest)
		return
	}

	processed := a.FormatText(r.Context(), text)

	style := r.FormValue("style")
	if style == "" {
		style = a.cfg.StyleLabel
	}
	outPath := filepath.Join(a.cfg.OutputDir, outputName(header.Filename))
	if err := render.WritePDF(documentTitle(style), processed, outPath); err != nil {
		log.Error().Err(err).Msg("render failed")
		http.Error(w, "could not render document", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("file", header.Filename).
		Int("chars", len(text)).
		Str("output", outPath).
		Msg("document formatted")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(outPath)))
	http.ServeFile(w, r, outPath)
}

// saveUpload copies the uploaded part into the upload directory under its
// base name, dropping any client-supplied path components.
func (a *App) saveUpload(file io.Reader, name string) (string, error) {
	path := filepath.Join(a.cfg.UploadDir, filepath.Base(name))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
