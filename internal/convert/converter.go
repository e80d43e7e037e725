// Package convert turns a sales search export into a profiles request body.
package convert

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/law-makers/salesurl/internal/utils/output"
	urlutil "github.com/law-makers/salesurl/internal/utils/url"
	"github.com/law-makers/salesurl/pkg/models"
)

// Converter reads InputPath, writes the projected document to OutputPath and
// then prints it to Display.
type Converter struct {
	InputPath  string
	OutputPath string
	Display    io.Writer
	logger     zerolog.Logger
}

// New creates a Converter. A nil display discards the printed copy.
func New(inputPath, outputPath string, display io.Writer, logger zerolog.Logger) *Converter {
	if display == nil {
		display = io.Discard
	}
	return &Converter{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Display:    display,
		logger:     logger,
	}
}

// Convert runs one conversion. It is all-or-nothing: when reading or parsing
// fails the output file is not touched, and the document is printed only
// after it has been written.
func (c *Converter) Convert(ctx context.Context) ([]models.ProfileRequest, error) {
	start := time.Now()

	data, err := os.ReadFile(c.InputPath)
	if err != nil {
		return nil, newError(ErrCodeIO, "cannot read input", err).withPath(c.InputPath)
	}
	c.logger.Debug().
		Str("input", c.InputPath).
		Int("bytes", len(data)).
		Msg("Input read")

	doc, err := Parse(data)
	if err != nil {
		if ce, ok := err.(*Error); ok {
			ce.withPath(c.InputPath)
		}
		return nil, err
	}
	c.checkURLs(doc)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := output.SaveJSON(doc, c.OutputPath); err != nil {
		return nil, newError(ErrCodeIO, "cannot write output", err).withPath(c.OutputPath)
	}
	c.logger.Info().
		Str("output", c.OutputPath).
		Int("records", len(doc)).
		Dur("elapsed", time.Since(start)).
		Msg("Output saved")

	if err := output.PrintJSON(c.Display, doc); err != nil {
		return nil, newError(ErrCodeIO, "cannot print output", err)
	}
	return doc, nil
}

// checkURLs logs values that are not absolute http(s) URLs. They are still copied.
func (c *Converter) checkURLs(doc []models.ProfileRequest) {
	for i, req := range doc {
		if err := urlutil.ValidateURL(req.URL()); err != nil {
			c.logger.Warn().
				Err(err).
				Int("record", i).
				Str(models.FieldSalesURL, req.URL()).
				Msg("sales_url is not an absolute URL")
		}
	}
}
