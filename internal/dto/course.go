package dto

// PurgeResult reports how many published-marked drafts a sweep removed.
type PurgeResult struct {
	Purged int64 `json:"purged"`
}
