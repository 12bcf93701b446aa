package alerts

import (
	"encoding/json"
	"time"

	"github.com/propertyops/property-alerts/pkg/types"
)

const EntityUpdatedTopic string = "propertyops.entityUpdated"

type AlertCreated struct {
	Alert     types.Alert `json:"alert"`
	Timestamp time.Time   `json:"timestamp"`
}

func (l *AlertCreated) ContentType() string {
	return "application/json"
}
func (l *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (l *AlertCreated) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}

type AlertResolved struct {
	ID           string    `json:"id"`
	AlertType    string    `json:"alertType,omitempty"`
	RelatedTable string    `json:"relatedTable"`
	RelatedID    string    `json:"relatedID"`
	Timestamp    time.Time `json:"timestamp"`
}

func (l *AlertResolved) ContentType() string {
	return "application/json"
}
func (l *AlertResolved) TopicName() string {
	return "alerts.alertResolved"
}
func (l *AlertResolved) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}
