package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobEvent_JSON(t *testing.T) {
	evt := JobEvent{
		Type:       TypeJobUpdated,
		JobID:      3,
		Fields:     []string{"title", "salary"},
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	b, err := json.Marshal(evt)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"job.updated","job_id":3,"fields":["title","salary"],"occurred_at":"2024-01-02T03:04:05Z"}`, string(b))

	b, err = json.Marshal(JobEvent{Type: TypeJobDeleted, JobID: 1, OccurredAt: evt.OccurredAt})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "fields")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), JobEvent{Type: TypeJobCreated}))
}

func TestRedisStreamPublisher_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	err := NewRedisStreamPublisher(client, 100).Publish(context.Background(), JobEvent{Type: TypeJobCreated, JobID: 7})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish job.created for job 7")
}
