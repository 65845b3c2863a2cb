package services

// ParsePrice extracts the won amount from a catalog display string
// ("21,000원" → 21000). Non-digit characters are dropped.
func ParsePrice(s string) int64 {
	var n int64
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int64(r-'0')
		}
	}
	return n
}
