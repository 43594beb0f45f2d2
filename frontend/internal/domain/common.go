package frontend_domain

// CommonTemplateData holds fields that are common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	Error      string
	CSRFToken  string // CSRF token for form submissions
	Validation ValidationData
}

// ValidationData holds the limits shown next to the post form.
type ValidationData struct {
	ReviewMaxLen          int
	MaxPhotoSizeBytes     int64
	AllowedPhotoMimeTypes []string
}
