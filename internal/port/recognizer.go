package port

import "context"

// TextRecognizer abstracts the OCR engine that turns a scanned contract
// image into raw text. Implementations must return the text exactly as the
// engine produced it; normalization happens downstream.
type TextRecognizer interface {
	Recognize(ctx context.Context, image []byte, language string) (string, error)
}
