package utils

import "fmt"

// FormatDownloads renders a download counter the way the catalog cards
// show it: 1532 -> "1.5K", 2400000 -> "2.4M", small numbers unchanged.
func FormatDownloads(count int) string {
	switch {
	case count >= 1_000_000:
		return trimTrailingZero(float64(count)/1_000_000) + "M"
	case count >= 1_000:
		return trimTrailingZero(float64(count)/1_000) + "K"
	default:
		return fmt.Sprintf("%d", count)
	}
}

// FormatSize renders a size in gigabytes, one decimal place: "65.2 GB".
func FormatSize(gigabytes float64) string {
	return fmt.Sprintf("%.1f GB", gigabytes)
}

func trimTrailingZero(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
