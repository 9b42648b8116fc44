package engine

import "time"

// Face is a registered identity in the engine's gallery.
type Face struct {
	PersonID     string    `json:"person_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

type faceList struct {
	Faces []Face `json:"faces"`
}

// AddFaceResult is returned by the engine after registering a face.
type AddFaceResult struct {
	PersonID string `json:"person_id"`
	Message  string `json:"message"`
}

// Detection summarizes one identity seen in a processed video. Known
// is false for faces that matched nobody in the gallery.
type Detection struct {
	PersonID string `json:"person_id"`
	Known    bool   `json:"known"`
	Frames   int    `json:"frames"`
}

// EmotionCount aggregates one emotion label across a processed video.
type EmotionCount struct {
	Label    string  `json:"label"`
	Frames   int     `json:"frames"`
	AvgScore float64 `json:"avg_score"`
}

// AnalysisResult is the engine's report for one processed video. The
// annotated copy with bounding boxes is written to object storage and
// linked through OutputURL.
type AnalysisResult struct {
	OutputURL  string         `json:"output_url"`
	Frames     int            `json:"frames"`
	Duration   float64        `json:"duration_seconds"`
	Detections []Detection    `json:"detections"`
	Emotions   []EmotionCount `json:"emotions"`
}

// StoredVideoRequest points the engine at a video that already sits in
// object storage. The engine writes the annotated copy to the output
// location.
type StoredVideoRequest struct {
	InputBucket  string
	InputKey     string
	OutputBucket string
	OutputKey    string
	Region       string
}

// StoredVideoResult is the engine's response for stored-video
// processing.
type StoredVideoResult struct {
	Status    string `json:"status"`
	OutputURL string `json:"output_url"`
}
