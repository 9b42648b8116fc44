// Package report turns the engine's raw analysis result into the
// summary shown to users. It is pure aggregation; nothing here talks
// to the network.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/engine"
)

// Report is the aggregated view of one analyzed video.
type Report struct {
	OutputURL    string           `json:"output_url"`
	Frames       int              `json:"frames"`
	Duration     float64          `json:"duration_seconds"`
	KnownFaces   int              `json:"known_faces"`
	UnknownFaces int              `json:"unknown_faces"`
	People       []PersonSummary  `json:"people"`
	Emotions     []EmotionSummary `json:"emotions"`

	// Dominant is the emotion seen in the most frames, "neutral"
	// when the video contained no classified faces.
	Dominant string `json:"dominant_emotion"`
}

// PersonSummary describes one identity across the video.
type PersonSummary struct {
	PersonID string  `json:"person_id"`
	Known    bool    `json:"known"`
	Frames   int     `json:"frames"`
	Share    float64 `json:"share"`
}

// EmotionSummary describes one emotion label across the video.
type EmotionSummary struct {
	Label    string  `json:"label"`
	Frames   int     `json:"frames"`
	AvgScore float64 `json:"avg_score"`
	Share    float64 `json:"share"`
	Color    string  `json:"color"`
}

// Build aggregates an engine result. People are ordered by frame count
// descending, emotions likewise; ties on emotion frames go to the
// higher average score.
func Build(result *engine.AnalysisResult, palette *config.Emotions) *Report {
	r := &Report{
		OutputURL: result.OutputURL,
		Frames:    result.Frames,
		Duration:  result.Duration,
		Dominant:  "neutral",
	}

	for _, d := range result.Detections {
		if d.Known {
			r.KnownFaces++
		} else {
			r.UnknownFaces++
		}
		r.People = append(r.People, PersonSummary{
			PersonID: d.PersonID,
			Known:    d.Known,
			Frames:   d.Frames,
			Share:    share(d.Frames, result.Frames),
		})
	}
	sort.SliceStable(r.People, func(i, j int) bool {
		return r.People[i].Frames > r.People[j].Frames
	})

	for _, e := range result.Emotions {
		summary := EmotionSummary{
			Label:    e.Label,
			Frames:   e.Frames,
			AvgScore: e.AvgScore,
			Share:    share(e.Frames, result.Frames),
		}
		if palette != nil {
			summary.Color = palette.ColorFor(e.Label)
		}
		r.Emotions = append(r.Emotions, summary)
	}
	sort.SliceStable(r.Emotions, func(i, j int) bool {
		if r.Emotions[i].Frames != r.Emotions[j].Frames {
			return r.Emotions[i].Frames > r.Emotions[j].Frames
		}
		return r.Emotions[i].AvgScore > r.Emotions[j].AvgScore
	})

	if len(r.Emotions) > 0 {
		r.Dominant = r.Emotions[0].Label
	}

	return r
}

func share(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total)
}

// FormatText renders the report as plain text for CLI output and for
// summary prompts.
func FormatText(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyzed %d frames (%.1fs).\n", r.Frames, r.Duration)
	fmt.Fprintf(&b, "Faces: %d known, %d unknown.\n", r.KnownFaces, r.UnknownFaces)

	for _, p := range r.People {
		marker := ""
		if !p.Known {
			marker = " (unknown)"
		}
		fmt.Fprintf(&b, "  - %s%s: %d frames (%.1f%%)\n", p.PersonID, marker, p.Frames, p.Share*100)
	}

	if len(r.Emotions) > 0 {
		b.WriteString("Emotions:\n")
		for _, e := range r.Emotions {
			fmt.Fprintf(&b, "  - %s: %d frames (%.1f%%), avg score %.2f\n", e.Label, e.Frames, e.Share*100, e.AvgScore)
		}
	}

	fmt.Fprintf(&b, "Dominant emotion: %s.\n", r.Dominant)

	if r.OutputURL != "" {
		fmt.Fprintf(&b, "Annotated video: %s\n", r.OutputURL)
	}

	return b.String()
}
