package domain

// ReapResult counts rows deleted by one reaper run.
type ReapResult struct {
	Posts     int64 `json:"posts"`
	Comments  int64 `json:"comments"`
	Reactions int64 `json:"reactions"`
}

func (r ReapResult) Total() int64 {
	return r.Posts + r.Comments + r.Reactions
}
