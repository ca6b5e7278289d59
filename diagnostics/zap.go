package diagnostics

import (
	"go.uber.org/zap"
)

// ZapSink writes diagnostics to a zap logger.
// Warnings go out at warn level, handler contract violations at error level.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a ZapSink. A nil logger discards everything.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger.Named("reducer")}
}

// Report logs d.
func (s *ZapSink) Report(d Diagnostic) {
	fields := []zap.Field{
		zap.String("diagnostic_id", d.ID.String()),
		zap.String("kind", d.Kind.String()),
		zap.String("code", d.Code),
	}
	if d.Reducer != "" {
		fields = append(fields, zap.String("reducer", d.Reducer))
	}
	if d.Handler != "" {
		fields = append(fields, zap.String("handler", d.Handler))
	}
	if d.ActionType != "" {
		fields = append(fields, zap.String("action_type", d.ActionType))
	}

	switch d.Severity() {
	case SeverityError:
		s.logger.Error(d.Message, fields...)
	default:
		s.logger.Warn(d.Message, fields...)
	}
}
