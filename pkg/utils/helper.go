package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateSaleNumber creates a human-readable receipt number with timestamp
func GenerateSaleNumber() string {
	now := time.Now()

	// Format: SALE-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("SALE-%s-%s-%s", datePart, timePart, randomPart)
}
