package component

type Score struct {
	Player   int
	Enemy    int
	WinScore int
	Winner   PaddleSide
	Over     bool
}

var ScoreComponent = NewComponent[Score]()
