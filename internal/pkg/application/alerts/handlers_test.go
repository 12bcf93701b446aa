package alerts

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/messaging-golang/pkg/messaging"
)

func TestEntityUpdatedHandlerResolvesAlerts(t *testing.T) {
	is := is.New(t)
	log := slog.Default()
	ctx := context.Background()

	svc := &AlertServiceMock{
		ResolveAlertsForEntityFunc: func(ctx context.Context, relatedTable, relatedID string, alertTypes []string) (int, error) {
			return 2, nil
		},
	}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(entityUpdated{
				Table:      TableBills,
				ID:         "bill-01",
				AlertTypes: []string{"bill_overdue", "bill_due_soon"},
			})
			return b
		},
	}

	handler := NewEntityUpdatedHandler(svc)
	handler(ctx, msg, log)

	is.Equal(1, len(svc.ResolveAlertsForEntityCalls()))
	is.Equal(TableBills, svc.ResolveAlertsForEntityCalls()[0].RelatedTable)
	is.Equal("bill-01", svc.ResolveAlertsForEntityCalls()[0].RelatedID)
	is.Equal(2, len(svc.ResolveAlertsForEntityCalls()[0].AlertTypes))
}

func TestEntityUpdatedHandlerIgnoresIncompleteMessages(t *testing.T) {
	is := is.New(t)
	log := slog.Default()
	ctx := context.Background()

	svc := &AlertServiceMock{}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			return []byte(`{"table":"bills"}`)
		},
	}

	handler := NewEntityUpdatedHandler(svc)
	handler(ctx, msg, log)

	is.Equal(0, len(svc.ResolveAlertsForEntityCalls()))
}

func TestEntityUpdatedHandlerIgnoresMalformedBody(t *testing.T) {
	is := is.New(t)
	log := slog.Default()
	ctx := context.Background()

	svc := &AlertServiceMock{}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			return []byte("not json")
		},
	}

	handler := NewEntityUpdatedHandler(svc)
	handler(ctx, msg, log)

	is.Equal(0, len(svc.ResolveAlertsForEntityCalls()))
}
