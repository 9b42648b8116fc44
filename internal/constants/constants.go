// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

import "time"

// File upload constants
const (
	// DefaultMaxVideoUploadMB is the default cap for video uploads in megabytes.
	// Overridable via the UPLOAD_MAX_MB environment variable.
	DefaultMaxVideoUploadMB = 512

	// MaxImageUploadSize is the maximum face image upload size in bytes (20MB)
	MaxImageUploadSize = 20 << 20

	// MaxPersonIDLength is the maximum accepted length of a person identifier
	MaxPersonIDLength = 128

	// UploadMemoryBuffer is the in-memory threshold for parsing multipart
	// video uploads; larger parts spool to temp files (32MB)
	UploadMemoryBuffer = 32 << 20

	// MaxFaceImageDim is the maximum dimension (width or height) a face image
	// is forwarded with; larger images are downscaled first
	MaxFaceImageDim = 1600
)

// Status banner constants
const (
	// BannerAutoHideDelay is how long success and error banners stay visible.
	// Processing banners persist until replaced.
	BannerAutoHideDelay = 5000 * time.Millisecond
)

// Event channel constants
const (
	// EventChannelBuffer is the buffer size for job event channels
	EventChannelBuffer = 100
)

// Summary provider names accepted by the SUMMARY_PROVIDER variable
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// Engine client constants
const (
	// MetadataRequestTimeout bounds short engine calls (registration, face
	// listing, health). Video processing calls carry no client timeout and
	// are bounded only by the caller's context.
	MetadataRequestTimeout = 30 * time.Second

	// UploadProgressStep is the byte interval between upload progress events
	UploadProgressStep = 256 << 10
)
