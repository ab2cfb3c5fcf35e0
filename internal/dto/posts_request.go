package dto

type PatchPostRequest struct {
	Action string `json:"action"`
	UserID string `json:"userId"`
	Text   string `json:"text"`
}
