package domain

import (
	"encoding/json"
	"fmt"
)

// LogType tags each line in log.ndjson
type LogType string

const (
	LogDone        LogType = "DONE"
	LogEvent       LogType = "EVENT"
	LogSync        LogType = "SYNC"
	LogExpired     LogType = "EXPIRED"
	LogDailyReward LogType = "DAILY_REWARD"
	LogDailySpin   LogType = "DAILY_SPIN"
	LogUseReward   LogType = "USE_REWARD"
	LogShop        LogType = "SHOP"
	LogCelebrate   LogType = "CELEBRATE"
	LogRevenue     LogType = "REVENUE"
)

// LogEntry is one immutable audit record. Fields holds the type-specific
// attributes and is flattened next to ts and type on the wire.
type LogEntry struct {
	TS     string
	Type   LogType
	Fields map[string]any
}

// NewLogEntry builds an entry from alternating key/value pairs
func NewLogEntry(ts string, typ LogType, kv ...any) LogEntry {
	fields := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fields[key] = kv[i+1]
	}
	return LogEntry{TS: ts, Type: typ, Fields: fields}
}

// Get returns a type-specific field
func (e LogEntry) Get(key string) (any, bool) {
	v, ok := e.Fields[key]
	return v, ok
}

// MarshalJSON implements json.Marshaler
func (e LogEntry) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(e.Fields)+2)
	for k, v := range e.Fields {
		doc[k] = v
	}
	doc["ts"] = e.TS
	doc["type"] = e.Type
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler
func (e *LogEntry) UnmarshalJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode log entry: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("decode log entry: not an object")
	}
	ts, _ := doc["ts"].(string)
	typ, _ := doc["type"].(string)
	delete(doc, "ts")
	delete(doc, "type")
	e.TS = ts
	e.Type = LogType(typ)
	e.Fields = doc
	return nil
}
