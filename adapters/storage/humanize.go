package storage

import (
	"fmt"
)

// FormatBytes 將位元組數轉成易讀的字串，例如 500 bytes、2.00 KB
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d bytes", bytes)
	}
	value := float64(bytes)
	units := []string{"KB", "MB", "GB", "TB", "PB"}
	for i := 0; i < len(units); i++ {
		value /= unit
		if value < unit || i == len(units)-1 {
			return fmt.Sprintf("%.2f %s", value, units[i])
		}
	}
	return fmt.Sprintf("%d bytes", bytes)
}
