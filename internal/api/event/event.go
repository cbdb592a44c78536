package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-jobly/pkg/common"

	"github.com/redis/go-redis/v9"
)

// StreamJobEvents is the Redis stream job changes are appended to.
const StreamJobEvents = common.RedisStreamJobEvents

// Type names a job change.
type Type string

const (
	TypeJobCreated Type = "job.created"
	TypeJobUpdated Type = "job.updated"
	TypeJobDeleted Type = "job.deleted"
)

// JobEvent describes a change to a job. Fields lists what an update touched.
type JobEvent struct {
	Type       Type      `json:"type"`
	JobID      int       `json:"job_id"`
	Fields     []string  `json:"fields,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers job events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, evt JobEvent) error
}

// NewRedisStreamPublisher appends events to StreamJobEvents, trimming the
// stream to roughly maxLen entries when maxLen is positive.
func NewRedisStreamPublisher(client *redis.Client, maxLen int64) Publisher {
	return &redisStreamPublisher{client: client, maxLen: maxLen}
}

type redisStreamPublisher struct {
	client *redis.Client
	maxLen int64
}

func (p *redisStreamPublisher) Publish(ctx context.Context, evt JobEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal job event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: StreamJobEvents,
		Values: map[string]interface{}{"type": string(evt.Type), "payload": payload},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}
	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("publish %s for job %d: %w", evt.Type, evt.JobID, err)
	}
	return nil
}

// NopPublisher drops every event. It is used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, JobEvent) error { return nil }
