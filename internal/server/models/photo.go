package models

// PhotoUpload instructs the client to upload a photo with a presigned URL
// and then reference DownloadURL from an article or profile.
type PhotoUpload struct {
	Key         string `json:"key"`
	UploadURL   string `json:"upload_url"`
	DownloadURL string `json:"download_url"`
}
