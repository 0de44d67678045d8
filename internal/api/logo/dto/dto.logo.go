package logodto

// LogoCreateInput dùng cho POST /logos
type LogoCreateInput struct {
	Name string `json:"name"`
	URL  string `json:"url" validate:"required"`
}

// LogoBulkDeleteInput dùng cho POST /logos/bulk-delete
type LogoBulkDeleteInput struct {
	IDs []string `json:"ids"`
}
