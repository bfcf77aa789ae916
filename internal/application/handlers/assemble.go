// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ersonp/story-core/internal/domain/entities"
	"github.com/ersonp/story-core/internal/domain/ports"
	"github.com/ersonp/story-core/internal/domain/services"
	"github.com/ersonp/story-core/internal/infrastructure/parsers"
)

// Shown when assembly fails unexpectedly.
const (
	FallbackTitle = "A Story Still Being Written"
	FallbackBody  = "Our storyteller lost the thread this time. Please try again in a moment."
)

// AssembleHandler validates assembly requests and guards the assembler.
type AssembleHandler struct {
	assembler  *services.AssemblerService
	rng        ports.RandomSource
	escapeHTML bool
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewAssembleHandler creates a new assemble handler. rng must be safe for
// concurrent use when the handler is shared. With escapeHTML set, user
// text is HTML-escaped before it reaches the templates.
func NewAssembleHandler(assembler *services.AssemblerService, rng ports.RandomSource, escapeHTML bool, logger *zap.Logger) *AssembleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssembleHandler{
		assembler:  assembler,
		rng:        rng,
		escapeHTML: escapeHTML,
		validate:   newValidator(),
		logger:     logger,
	}
}

// AssembleResult is an assembled story. Fallback marks the canned reply
// returned when assembly failed.
type AssembleResult struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Fallback bool   `json:"fallback"`
}

// Handle validates req and assembles a story.
func (h *AssembleHandler) Handle(_ context.Context, req entities.StoryRequest) (*AssembleResult, error) {
	req.Characters = strings.TrimSpace(req.Characters)
	req.Setting = strings.TrimSpace(req.Setting)
	req.Category = entities.Category(strings.TrimSpace(string(req.Category)))
	req.Language = entities.LanguageCode(strings.TrimSpace(string(req.Language)))

	if err := h.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if h.escapeHTML {
		req.Characters = html.EscapeString(req.Characters)
		req.Setting = html.EscapeString(req.Setting)
		req.Category = entities.Category(html.EscapeString(string(req.Category)))
	}

	return h.assemble(req), nil
}

// assemble never fails: a panic in the assembler yields the fallback pair.
func (h *AssembleHandler) assemble(req entities.StoryRequest) (result *AssembleResult) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("story assembly failed",
				zap.Any("panic", r),
				zap.String("language", string(req.Language)),
				zap.String("category", string(req.Category)),
			)
			result = &AssembleResult{Title: FallbackTitle, Body: FallbackBody, Fallback: true}
		}
	}()

	story := h.assembler.Assemble(req, h.rng)
	return &AssembleResult{Title: story.Title, Body: story.Body}
}

// BatchOptions controls batch assembly.
type BatchOptions struct {
	Format          string // "json", "csv", or "auto"
	DefaultCategory entities.Category
	DefaultLanguage entities.LanguageCode
}

// BatchItem is the outcome for one request in a batch file.
type BatchItem struct {
	Line   int             `json:"line"`
	Result *AssembleResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// HandleBatch assembles every request in a JSON or CSV file. Invalid rows
// are reported per item and do not stop the batch.
func (h *AssembleHandler) HandleBatch(ctx context.Context, filePath string, opts BatchOptions) ([]BatchItem, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}
	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	raw, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	if opts.DefaultCategory == "" {
		opts.DefaultCategory = entities.CategoryAdventure
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = entities.LanguageEnglish
	}

	items := make([]BatchItem, 0, len(raw))
	for _, r := range raw {
		item := BatchItem{Line: r.LineNum}
		result, err := h.Handle(ctx, r.ToRequest(opts.DefaultCategory, opts.DefaultLanguage))
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Result = result
		}
		items = append(items, item)
	}
	return items, nil
}
