package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Money and hour fields are stored as strings to avoid DynamoDB number
// coercion surprises. 'f' with -1 precision round-trips float64 exactly.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
