package models

// DownloadResult is the outcome record for one download operation.
//
// Error is populated only when Success is false. The struct itself leaves
// that exclusivity open for platform code that builds results by hand; the
// NewDownloadSuccess and NewDownloadFailure constructors enforce it.
type DownloadResult struct {
	Success  bool           `json:"success"`
	AssetUID string         `json:"asset_uid"`
	Files    []string       `json:"files"`
	Error    string         `json:"error,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewDownloadSuccess creates a successful download result for the given
// asset and downloaded file paths.
func NewDownloadSuccess(assetUID string, files []string, metadata map[string]any) *DownloadResult {
	return &DownloadResult{
		Success:  true,
		AssetUID: assetUID,
		Files:    files,
		Metadata: metadata,
	}
}

// NewDownloadFailure creates a failed download result carrying the error
// message. Files is always empty on failure.
func NewDownloadFailure(assetUID string, errMessage string) *DownloadResult {
	return &DownloadResult{
		Success:  false,
		AssetUID: assetUID,
		Files:    []string{},
		Error:    errMessage,
	}
}
