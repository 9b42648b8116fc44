package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/UsmanZaka51/emotion-api/internal/constants"
)

// NormalizePersonID trims surrounding whitespace and NFC-normalizes a
// person id so the same name typed on different platforms stores as
// the same gallery key.
func NormalizePersonID(id string) string {
	return norm.NFC.String(strings.TrimSpace(id))
}

// FoldPersonID reduces a person id for similarity comparison
// (lowercase, no diacritics, spaces for dashes). "Jiří-Novák" and
// "jiri novak" fold to the same value.
func FoldPersonID(id string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(t, id)
	folded = strings.ToLower(folded)
	folded = strings.ReplaceAll(folded, "-", " ")
	return strings.Join(strings.Fields(folded), " ")
}

// ValidatePersonID rejects ids the gallery cannot store. Called on the
// normalized form.
func ValidatePersonID(id string) error {
	if id == "" {
		return fmt.Errorf("person id must not be empty")
	}

	if len(id) > constants.MaxPersonIDLength {
		return fmt.Errorf("person id must not exceed %d bytes", constants.MaxPersonIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return fmt.Errorf("person id must not contain control characters")
		}
	}

	return nil
}

// AddFace registers a face image under the given person id. The engine
// extracts the embedding and stores it in the gallery; registering an
// already known id is the engine's call to accept or reject.
func (e *Engine) AddFace(ctx context.Context, personID, fileName string, image io.Reader) (*AddFaceResult, error) {
	payload := multipartPayload{
		fields:    map[string]string{"person_id": personID},
		fileField: "face_image",
		fileName:  fileName,
		fileBody:  image,
	}

	return doPostMultipart[AddFaceResult](ctx, e, "admin/add-face", payload, http.StatusOK, http.StatusCreated)
}

// ListFaces returns every registered identity.
func (e *Engine) ListFaces(ctx context.Context) ([]Face, error) {
	list, err := doGetJSON[faceList](ctx, e, "admin/faces")
	if err != nil {
		return nil, err
	}

	return list.Faces, nil
}
