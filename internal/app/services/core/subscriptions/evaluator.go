package subscriptions

import (
	"medibook-service/internal/app/contracts"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Subscription payloads arrive in whatever shape the deployment's billing
// integration produces. Normalization sticks to fixed candidate-key lists so
// the sniffing stays enumerable and testable instead of open-ended.
var (
	wrapperKeys   = []string{"data", "subscription", "subscriptions"}
	activeKeys    = []string{"isActive", "status", "is_active", "active", "subscriptionStatus"}
	remainingKeys = []string{"remainingFreeAppointments", "remainingAppointments", "remainingBookings", "freeAppointmentsLeft", "freeAppointmentsRemaining"}
)

var activeStrings = map[string]bool{
	"true":    true,
	"active":  true,
	"yes":     true,
	"enabled": true,
}

// Evaluate normalizes an arbitrarily-shaped subscription payload into a quota
// decision. It is total: malformed input yields not-eligible, never an error.
func Evaluate(payload json.RawMessage) contracts.QuotaResult {
	if len(payload) == 0 {
		return contracts.QuotaResult{}
	}

	var decoded interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return contracts.QuotaResult{}
	}

	decoded = unwrap(unwrap(decoded))

	if entries, ok := decoded.([]interface{}); ok {
		decoded = pickEntry(entries)
	}

	obj, ok := decoded.(map[string]interface{})
	if !ok {
		return contracts.QuotaResult{}
	}
	return evaluateObject(obj)
}

// unwrap peels one level of a known wrapper key.
func unwrap(value interface{}) interface{} {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return value
	}
	for _, key := range wrapperKeys {
		if inner, found := obj[key]; found {
			return inner
		}
	}
	return value
}

// pickEntry prefers an active entry carrying a numeric remaining count, then
// any active entry.
func pickEntry(entries []interface{}) interface{} {
	var firstActive interface{}
	for _, entry := range entries {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if !isActive(obj) {
			continue
		}
		if _, found := remainingCount(obj); found {
			return obj
		}
		if firstActive == nil {
			firstActive = obj
		}
	}
	return firstActive
}

func evaluateObject(obj map[string]interface{}) contracts.QuotaResult {
	if !isActive(obj) {
		return contracts.QuotaResult{}
	}

	remaining, found := remainingCount(obj)
	if !found {
		return contracts.QuotaResult{Eligible: true}
	}
	return contracts.QuotaResult{
		Eligible:  remaining > 0,
		Remaining: &remaining,
	}
}

func isActive(obj map[string]interface{}) bool {
	for _, key := range activeKeys {
		value, found := obj[key]
		if !found {
			continue
		}
		switch v := value.(type) {
		case bool:
			if v {
				return true
			}
		case string:
			if activeStrings[strings.ToLower(v)] {
				return true
			}
		}
	}
	return false
}

func remainingCount(obj map[string]interface{}) (int, bool) {
	for _, key := range remainingKeys {
		value, found := obj[key]
		if !found {
			continue
		}
		switch v := value.(type) {
		case float64:
			return int(v), true
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
