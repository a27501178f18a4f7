package port

import "context"

// EssayVisionClient defines the interface for submitting one essay image with
// a grading prompt to a vision-capable completion model. imageBase64 is the
// raw base64 payload without the data-URI prefix.
type EssayVisionClient interface {
	GradeImage(ctx context.Context, prompt string, imageBase64 string) (string, error)
}
