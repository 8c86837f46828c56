// Package notification delivers workflow events to approvers and proposers.
// Delivery is best-effort: failures are logged and never propagate into the
// state transition that triggered them.
package notification

import (
	"context"
	"log/slog"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
	"github.com/ekrsw/knowledge-app-sub000/internal/logger"
)

// Sink receives workflow events. Implementations may deliver by mail, chat
// webhook or anything else; errors are reported to the caller for logging
// but must not be treated as fatal.
type Sink interface {
	NotifySubmitted(ctx context.Context, rev *domain.Revision, approvers []domain.User) error
	NotifyDecision(ctx context.Context, rev *domain.Revision, approver *domain.User, decision domain.Decision, comment string) error
}

// LogSink writes notifications to the structured log. Used as the default
// sink until a real delivery channel is configured.
type LogSink struct{}

// NewLogSink creates a new LogSink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// NotifySubmitted logs a submission event addressed to eligible approvers.
func (s *LogSink) NotifySubmitted(ctx context.Context, rev *domain.Revision, approvers []domain.User) error {
	recipients := make([]string, 0, len(approvers))
	for _, a := range approvers {
		recipients = append(recipients, a.Email)
	}
	logger.InfoContext(ctx, "revision submitted for approval",
		slog.String("revision_id", rev.ID),
		slog.String("article_id", rev.ArticleID),
		slog.Any("recipients", recipients))
	return nil
}

// NotifyDecision logs a decision event addressed to the proposer.
func (s *LogSink) NotifyDecision(ctx context.Context, rev *domain.Revision, approver *domain.User, decision domain.Decision, comment string) error {
	logger.InfoContext(ctx, "revision decided",
		slog.String("revision_id", rev.ID),
		slog.String("proposer_id", rev.ProposerID),
		slog.String("approver", approver.Name),
		slog.String("decision", string(decision)),
		slog.String("comment", comment))
	return nil
}
