package recognizer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"gestdoc/internal/config"
	"gestdoc/internal/domain"
	"gestdoc/internal/port"
)

type tesseractClient struct {
	binary  string
	lang    string
	timeout time.Duration
}

// NewTesseractClient creates a TextRecognizer backed by the tesseract CLI.
func NewTesseractClient(cfg *config.OCRConfig) port.TextRecognizer {
	return &tesseractClient{
		binary:  cfg.Binary,
		lang:    cfg.Language,
		timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
	}
}

// Recognize writes the image to a temp file and shells out to tesseract with
// stdout output. The engine's text is returned verbatim.
func (c *tesseractClient) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	if language == "" {
		language = c.lang
	}

	tmp, err := os.CreateTemp("", "gestdoc-ocr-*")
	if err != nil {
		return "", fmt.Errorf("recognizer: creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(image); err != nil {
		tmp.Close()
		return "", fmt.Errorf("recognizer: writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("recognizer: closing temp file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// "stdout" as the output base makes tesseract print the text instead of
	// writing a .txt next to the input.
	cmd := exec.CommandContext(ctx, c.binary, filepath.Clean(tmp.Name()), "stdout", "-l", language)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrRecognitionFailed, stderr.String(), err)
	}
	return out.String(), nil
}
