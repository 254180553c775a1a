package leaderboard

var ranks = []struct {
	below int
	title string
}{
	{100, "Bronze"},
	{200, "Silver"},
	{300, "Gold"},
	{400, "Platinum"},
	{500, "Diamond"},
	{600, "Star"},
}

// Rank maps a final score to the title shown on the game over screen
func Rank(score int) string {
	if score <= 0 {
		return "Unranked"
	}
	for _, r := range ranks {
		if score < r.below {
			return r.title
		}
	}
	return "King"
}
