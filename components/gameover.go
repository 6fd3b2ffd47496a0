package components

import "github.com/yohamta/donburi"

// GameOverOption is a row of the game over menu
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
	gameOverOptionCount
)

// GameOverData is the game over menu cursor
type GameOverData struct {
	SelectedOption GameOverOption
}

// Move shifts the cursor by delta rows, wrapping at both ends.
func (g *GameOverData) Move(delta int) {
	g.SelectedOption = GameOverOption(wrapIndex(int(g.SelectedOption)+delta, int(gameOverOptionCount)))
}

var GameOver = donburi.NewComponentType[GameOverData]()

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
