// Package ui models the upload page as a single view-state value plus
// typed events. The browser script applies the same transitions the
// reducer defines here; the server uses the model to render the page's
// initial state and to stream analysis events to open pages.
package ui

// Tab identifies one of the two page views.
type Tab string

// Exactly one tab is active at a time.
const (
	TabRegister Tab = "register"
	TabProcess  Tab = "process"
)

// ValidTab reports whether t names an existing tab.
func ValidTab(t Tab) bool {
	return t == TabRegister || t == TabProcess
}

// BannerKind classifies a status banner. Success and error banners
// auto-hide; processing banners persist until replaced.
type BannerKind string

const (
	BannerSuccess    BannerKind = "success"
	BannerError      BannerKind = "error"
	BannerProcessing BannerKind = "processing"
)

// Banner is the status message under the forms. The zero value is a
// hidden banner.
type Banner struct {
	Visible bool       `json:"visible"`
	Text    string     `json:"text"`
	Kind    BannerKind `json:"kind,omitempty"`
}

// RegisterForm is the face registration form. PreviewURL is a local
// object URL in the browser, never a server path.
type RegisterForm struct {
	PersonID   string `json:"person_id"`
	ImageName  string `json:"image_name"`
	PreviewURL string `json:"preview_url"`
	Submitting bool   `json:"submitting"`
}

// ProcessForm is the video processing form. OutputURL is set once the
// engine has produced an annotated video.
type ProcessForm struct {
	VideoName  string `json:"video_name"`
	PreviewURL string `json:"preview_url"`
	OutputURL  string `json:"output_url"`
	Progress   int    `json:"progress"`
	Submitting bool   `json:"submitting"`
	JobID      string `json:"job_id,omitempty"`
}

// State is the complete view state of the page.
type State struct {
	ActiveTab Tab          `json:"active_tab"`
	Banner    Banner       `json:"banner"`
	Register  RegisterForm `json:"register"`
	Process   ProcessForm  `json:"process"`
}

// Initial returns the page state before any interaction: registration
// tab active, banner hidden, forms empty.
func Initial() State {
	return State{ActiveTab: TabRegister}
}
