package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go_5_exam_review/internal/model"
)

// maxBodyBytes はリクエストボディの上限 (1MB)
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーにします。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.Join(model.ErrInvalidInput, errors.New("empty body"))
		}
		return errors.Join(model.ErrInvalidInput, err)
	}
	return nil
}
