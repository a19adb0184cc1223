package constants

// Vision provider names used in vision.defaultProvider and per-request overrides.
const (
	VisionProviderGemini     = "gemini"
	VisionProviderOpenAI     = "openai"
	VisionProviderAnthropic  = "anthropic"
	VisionProviderOCRService = "ocrservice"
	VisionProviderTesseract  = "tesseract"
)

// AllowedImageMimeTypes lists the upload formats forwarded to vision providers.
var AllowedImageMimeTypes = map[string]string{
	"image/jpeg":      "jpg",
	"image/jpg":       "jpg",
	"image/png":       "png",
	"image/webp":      "webp",
	"image/heic":      "heic",
	"image/heif":      "heif",
	"application/pdf": "pdf",
}
