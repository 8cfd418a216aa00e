package order

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderID generates a work order ID from the current max number.
// The format is RO-XXXX where XXXX is a zero-padded 4-digit number.
func GenerateOrderID(currentMax int) string {
	return fmt.Sprintf("RO-%04d", currentMax+1)
}

// ParseOrderNumber extracts the numeric portion from a work order ID.
// Returns -1 if the ID format is invalid.
func ParseOrderNumber(id string) int {
	var num int
	_, err := fmt.Sscanf(id, "RO-%d", &num)
	if err != nil {
		return -1
	}
	return num
}

// RandomOrderID generates a non-sequential work order token. Used when the
// deployment is configured for random IDs instead of a running counter.
func RandomOrderID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RO-" + strings.ToUpper(token[:8])
}
