package entity

const (
	StatPosition = "position"
	StatScore    = "score"
)

type LeaderboardEntry struct {
	UserID   int64  `json:"user_id"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	ImgURL   string `json:"img_url"`
	Score    int    `json:"score"`
}

func IsKnownStat(name string) bool {
	return name == StatPosition || name == StatScore
}
