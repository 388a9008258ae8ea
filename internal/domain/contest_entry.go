package domain

// ContestEntry の得票数はバックエンドの集計値をそのまま表示します
type ContestEntry struct {
	ID       ID        `json:"id"`
	Votes    uint64    `json:"votes"`
	ImageURL string    `json:"imageUrl"`
	Artist   Principal `json:"artist"`
}
