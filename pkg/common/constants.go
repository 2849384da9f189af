package common

const (
	RedisStreamBehavioralAlert = "habit.alert.triggered"

	AppVersion = "3.0.0"
)
