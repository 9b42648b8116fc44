package engine

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// ProgressFunc reports upload progress. Total is -1 when the video
// size is unknown.
type ProgressFunc func(sent, total int64)

// progressReader counts bytes read through it and reports them to the
// progress callback. Used to drive upload progress bars.
type progressReader struct {
	r        io.Reader
	total    int64
	sent     int64
	progress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.progress != nil {
			p.progress(p.sent, p.total)
		}
	}
	return n, err
}

// ProcessVideo uploads a video for face and emotion analysis and waits
// for the engine's report. The call runs for as long as the analysis
// does; cancel it through the context. Progress may be nil.
func (e *Engine) ProcessVideo(ctx context.Context, fileName string, size int64, video io.Reader, progress ProgressFunc) (*AnalysisResult, error) {
	body := io.Reader(video)
	if progress != nil {
		body = &progressReader{r: video, total: size, progress: progress}
	}

	payload := multipartPayload{
		fileField: "video_file",
		fileName:  fileName,
		fileBody:  body,
	}

	return doPostMultipart[AnalysisResult](ctx, e, "process-video", payload, http.StatusOK)
}

// ProcessStored asks the engine to analyze a video already sitting in
// object storage. The endpoint takes form fields, not JSON.
func (e *Engine) ProcessStored(ctx context.Context, req StoredVideoRequest) (*StoredVideoResult, error) {
	form := url.Values{}
	form.Set("input_bucket", req.InputBucket)
	form.Set("input_key", req.InputKey)
	form.Set("output_bucket", req.OutputBucket)
	form.Set("output_key", req.OutputKey)
	if req.Region != "" {
		form.Set("aws_region", req.Region)
	}

	return doPostForm[StoredVideoResult](ctx, e, "process", form)
}
