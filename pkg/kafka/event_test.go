package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewPayload struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
}

func TestNewEvent(t *testing.T) {
	payload := reviewPayload{ProductID: "prod-1", Rating: 5}

	event, err := NewEvent("review.submitted", "prod-1", "product", "catalog-service", payload)
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "review.submitted", event.EventType)
	assert.Equal(t, "prod-1", event.AggregateID)
	assert.Equal(t, "product", event.AggregateType)
	assert.Equal(t, 1, event.Version)
	assert.Equal(t, "catalog-service", event.Source)
	assert.Empty(t, event.CorrelationID)
	assert.NotNil(t, event.Metadata)
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, time.Second)
}

func TestNewEvent_UnmarshalableData(t *testing.T) {
	_, err := NewEvent("review.submitted", "prod-1", "product", "catalog-service", make(chan int))
	assert.Error(t, err)
}

func TestEvent_WithCorrelationID(t *testing.T) {
	event, err := NewEvent("currency.preferred", "sess-1", "session", "catalog-service", nil)
	require.NoError(t, err)

	same := event.WithCorrelationID("corr-9")
	assert.Same(t, event, same)
	assert.Equal(t, "corr-9", event.CorrelationID)
}

func TestEvent_MarshalRoundTrip(t *testing.T) {
	payload := reviewPayload{ProductID: "prod-2", Rating: 3}
	event, err := NewEvent("review.submitted", "prod-2", "product", "catalog-service", payload)
	require.NoError(t, err)
	event.WithCorrelationID("corr-1")

	raw, err := event.Marshal()
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, "corr-1", decoded.CorrelationID)

	var got reviewPayload
	require.NoError(t, decoded.UnmarshalData(&got))
	assert.Equal(t, payload, got)
}
