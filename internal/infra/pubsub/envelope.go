package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"knect/internal/domain/entity"

	"github.com/pkg/errors"
)

// PushEnvelope is the body Google Pub/Sub POSTs to push endpoints.
// The local publisher produces the same shape so the worker has a single decoding path.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps a change the way Pub/Sub would deliver it.
func NewPushEnvelope(event *entity.ConnectionChange, subscription string) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	env := &PushEnvelope{Subscription: subscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = changeAttributes(event)
	env.Message.MessageID = event.ID
	env.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return env, nil
}

// DecodeChange extracts the connection change carried by the envelope.
func (e *PushEnvelope) DecodeChange() (*entity.ConnectionChange, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var change entity.ConnectionChange
	if err := json.Unmarshal(data, &change); err != nil {
		return nil, errors.Wrap(err, "failed to parse connection change")
	}

	return &change, nil
}

func changeAttributes(event *entity.ConnectionChange) map[string]string {
	attributes := map[string]string{
		"event_id":        event.ID,
		"type":            string(event.Type),
		"connector_id":    event.Connection.ConnectorID.String(),
		"connected_to_id": event.Connection.ConnectedToID.String(),
		"actor_id":        event.ActorID.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
