package dto

type UploadResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

type AnalyzeDetails struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

type AnalyzeResponse struct {
	Message string         `json:"message"`
	Details AnalyzeDetails `json:"details"`
}
