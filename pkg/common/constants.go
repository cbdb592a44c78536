package common

const (
	// RedisStreamJobEvents receives one entry per job create, update and delete.
	RedisStreamJobEvents = "jobs.events"

	// RedisStreamMaxLenDefault bounds the event stream when config leaves it unset.
	RedisStreamMaxLenDefault int64 = 10000
)
