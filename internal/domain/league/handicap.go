package league

// CalculateHandicap derives a handicap from an average using the league ceiling and percentage.
// A nil average has no handicap.
func CalculateHandicap(l League, average *int) *int {
	if average == nil {
		return nil
	}

	handicap := 0
	if diff := l.HandicapMax - *average; diff > 0 {
		handicap = diff * l.HandicapPercentage / 100
	}
	return &handicap
}
