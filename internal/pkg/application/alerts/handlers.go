package alerts

import (
	"context"
	"encoding/json"

	"log/slog"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type entityUpdated struct {
	Table      string   `json:"table"`
	ID         string   `json:"id"`
	AlertTypes []string `json:"alertTypes,omitempty"`
}

// NewEntityUpdatedHandler resolves open alerts for a domain row as soon
// as the owning service announces a change to it.
func NewEntityUpdatedHandler(svc AlertService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "entity-updated")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := entityUpdated{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		if msg.Table == "" || msg.ID == "" {
			log.Warn("entity update without table or id, ignoring")
			return
		}

		n, err := svc.ResolveAlertsForEntity(ctx, msg.Table, msg.ID, msg.AlertTypes)
		if err != nil {
			log.Error("could not resolve alerts", "table", msg.Table, "id", msg.ID, "err", err.Error())
			return
		}

		if n > 0 {
			log.Info("resolved alerts for updated entity", "table", msg.Table, "id", msg.ID, "count", n)
		}
	}
}
