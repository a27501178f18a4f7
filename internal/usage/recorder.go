// Package usage appends structured API-usage records, one JSON object per
// line, to a process-wide log sink.
package usage

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Recorder writes one record per model call.
type Recorder struct {
	log *zap.Logger
}

// NewRecorder opens (or creates) the usage log at path in append mode and
// returns a recorder backed by a dedicated JSON core.
func NewRecorder(path string) (*Recorder, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open usage log %s: %w", path, err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "timestamp",
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(file),
		zapcore.InfoLevel,
	)

	return &Recorder{log: zap.New(core)}, nil
}

// NewNopRecorder returns a recorder that discards everything. For tests and
// callers that do not want a usage file.
func NewNopRecorder() *Recorder {
	return &Recorder{log: zap.NewNop()}
}

// RecordAPIUsage appends one usage record. Costs are rendered as dollar
// strings with 6 decimal places, matching the cost summary shown to callers.
func (r *Recorder) RecordAPIUsage(functionName, model string, inputTokens, outputTokens int, inputCost, outputCost, totalCost float64) {
	r.log.Info("api_usage",
		zap.String("function", functionName),
		zap.String("model", model),
		zap.Int("input_tokens", inputTokens),
		zap.Int("output_tokens", outputTokens),
		zap.String("input_cost", fmt.Sprintf("$%.6f", inputCost)),
		zap.String("output_cost", fmt.Sprintf("$%.6f", outputCost)),
		zap.String("total_cost", fmt.Sprintf("$%.6f", totalCost)),
	)
}

// Sync flushes buffered records.
func (r *Recorder) Sync() error {
	return r.log.Sync()
}
