package ui

import (
	"fmt"
	"strings"
)

// EventKind names one state transition.
type EventKind string

const (
	KindTabSelected           EventKind = "tab_selected"
	KindPersonIDChanged       EventKind = "person_id_changed"
	KindFaceImageChosen       EventKind = "face_image_chosen"
	KindVideoChosen           EventKind = "video_chosen"
	KindRegistrationSubmitted EventKind = "registration_submitted"
	KindRegistrationSucceeded EventKind = "registration_succeeded"
	KindRegistrationFailed    EventKind = "registration_failed"
	KindProcessingSubmitted   EventKind = "processing_submitted"
	KindProcessingStarted     EventKind = "processing_started"
	KindProcessingProgress    EventKind = "processing_progress"
	KindProcessingSucceeded   EventKind = "processing_succeeded"
	KindProcessingFailed      EventKind = "processing_failed"
	KindBannerExpired         EventKind = "banner_expired"
)

// Event is one typed transition. The payload fields used depend on
// Kind; the rest stay empty. Events serialize to JSON for the SSE
// stream and for the browser script.
type Event struct {
	Kind       EventKind `json:"kind"`
	Tab        Tab       `json:"tab,omitempty"`
	Value      string    `json:"value,omitempty"`
	FileName   string    `json:"file_name,omitempty"`
	PreviewURL string    `json:"preview_url,omitempty"`
	PersonID   string    `json:"person_id,omitempty"`
	Message    string    `json:"message,omitempty"`
	OutputURL  string    `json:"output_url,omitempty"`
	JobID      string    `json:"job_id,omitempty"`
	Progress   int       `json:"progress,omitempty"`
	Data       any       `json:"data,omitempty"`
}

// Banner texts. Error banners always carry the "Error: " prefix, so a
// server message "duplicate" renders as "Error: duplicate".
const (
	msgRegistering      = "Registering face..."
	msgProcessingVideo  = "Processing video... This may take a while."
	msgProcessed        = "Video processed successfully!"
	msgMissingPersonID  = "Please enter a person ID."
	msgMissingFaceImage = "Please select a face image."
	msgMissingVideo     = "Please select a video file."
)

func TabSelected(tab Tab) Event {
	return Event{Kind: KindTabSelected, Tab: tab}
}

func PersonIDChanged(value string) Event {
	return Event{Kind: KindPersonIDChanged, Value: value}
}

// FaceImageChosen records a file selection. An empty file name means
// the selection was cleared and hides the preview.
func FaceImageChosen(fileName, previewURL string) Event {
	return Event{Kind: KindFaceImageChosen, FileName: fileName, PreviewURL: previewURL}
}

func VideoChosen(fileName, previewURL string) Event {
	return Event{Kind: KindVideoChosen, FileName: fileName, PreviewURL: previewURL}
}

// RegistrationSubmitted validates the form. When it is incomplete the
// reducer only raises an error banner and leaves Submitting false; the
// page must not issue a network request in that case.
func RegistrationSubmitted() Event {
	return Event{Kind: KindRegistrationSubmitted}
}

func RegistrationSucceeded(personID string) Event {
	return Event{Kind: KindRegistrationSucceeded, PersonID: personID}
}

func RegistrationFailed(message string) Event {
	return Event{Kind: KindRegistrationFailed, Message: message}
}

func ProcessingSubmitted() Event {
	return Event{Kind: KindProcessingSubmitted}
}

func ProcessingStarted(jobID string) Event {
	return Event{Kind: KindProcessingStarted, JobID: jobID}
}

func ProcessingProgress(jobID string, progress int) Event {
	return Event{Kind: KindProcessingProgress, JobID: jobID, Progress: progress}
}

func ProcessingSucceeded(jobID, outputURL string, data any) Event {
	return Event{Kind: KindProcessingSucceeded, JobID: jobID, OutputURL: outputURL, Data: data}
}

func ProcessingFailed(jobID, message string) Event {
	return Event{Kind: KindProcessingFailed, JobID: jobID, Message: message}
}

func BannerExpired() Event {
	return Event{Kind: KindBannerExpired}
}

func successBanner(text string) Banner {
	return Banner{Visible: true, Text: text, Kind: BannerSuccess}
}

func errorBanner(message string) Banner {
	return Banner{Visible: true, Text: "Error: " + message, Kind: BannerError}
}

func processingBanner(text string) Banner {
	return Banner{Visible: true, Text: text, Kind: BannerProcessing}
}

// Apply returns the state after one event. It never mutates its input
// and ignores events that do not apply to the current state, so a
// stale timer expiry cannot hide a processing banner.
func Apply(s State, e Event) State {
	switch e.Kind {
	case KindTabSelected:
		if ValidTab(e.Tab) {
			s.ActiveTab = e.Tab
		}

	case KindPersonIDChanged:
		s.Register.PersonID = e.Value

	case KindFaceImageChosen:
		s.Register.ImageName = e.FileName
		s.Register.PreviewURL = e.PreviewURL
		if e.FileName == "" {
			s.Register.PreviewURL = ""
		}

	case KindVideoChosen:
		s.Process.VideoName = e.FileName
		s.Process.PreviewURL = e.PreviewURL
		if e.FileName == "" {
			s.Process.PreviewURL = ""
		}
		s.Process.OutputURL = ""
		s.Process.Progress = 0

	case KindRegistrationSubmitted:
		switch {
		case strings.TrimSpace(s.Register.PersonID) == "":
			s.Banner = errorBanner(msgMissingPersonID)
		case s.Register.ImageName == "":
			s.Banner = errorBanner(msgMissingFaceImage)
		default:
			s.Register.Submitting = true
			s.Banner = processingBanner(msgRegistering)
		}

	case KindRegistrationSucceeded:
		s.Register = RegisterForm{}
		s.Banner = successBanner(fmt.Sprintf("Face for %s registered successfully!", e.PersonID))

	case KindRegistrationFailed:
		s.Register.Submitting = false
		s.Banner = errorBanner(e.Message)

	case KindProcessingSubmitted:
		if s.Process.VideoName == "" {
			s.Banner = errorBanner(msgMissingVideo)
		} else {
			s.Process.Submitting = true
			s.Process.OutputURL = ""
			s.Process.Progress = 0
			s.Banner = processingBanner(msgProcessingVideo)
		}

	case KindProcessingStarted:
		s.Process.Submitting = true
		s.Process.JobID = e.JobID
		s.Banner = processingBanner(msgProcessingVideo)

	case KindProcessingProgress:
		s.Process.Progress = e.Progress

	case KindProcessingSucceeded:
		s.Process.Submitting = false
		s.Process.Progress = 100
		s.Process.OutputURL = e.OutputURL
		s.Banner = successBanner(msgProcessed)

	case KindProcessingFailed:
		s.Process.Submitting = false
		s.Banner = errorBanner(e.Message)

	case KindBannerExpired:
		if s.Banner.Kind != BannerProcessing {
			s.Banner = Banner{}
		}
	}

	return s
}
