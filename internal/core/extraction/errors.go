package extraction

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine は企業リストの行が想定形式でない場合に返されます
	ErrMalformedLine = errors.New("malformed company line")

	// ErrSourceUnavailable は検索呼び出しやファイル読み込みが失敗した場合に返されます
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedDocument は検索レスポンスがJSONとして解釈できない場合に返されます
	ErrMalformedDocument = errors.New("malformed search document")

	// ErrMissingResults は検索レスポンスに結果リストが無い場合に返されます
	ErrMissingResults = errors.New("missing organic results")

	// ErrEmptyInference は推論結果から創業者名が1件も得られなかった場合に返されます
	ErrEmptyInference = errors.New("empty inference answer")
)

// PipelineError はパイプライン固有のエラーを表します
type PipelineError struct {
	Op      string // 操作名
	Company string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Company != "" {
		return fmt.Sprintf("extraction: %s: %s (company=%s)", e.Op, e.Err, e.Company)
	}
	return fmt.Sprintf("extraction: %s: %s", e.Op, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError は新しいPipelineErrorを作成します
func NewPipelineError(op, company string, err error) *PipelineError {
	return &PipelineError{
		Op:      op,
		Company: company,
		Err:     err,
	}
}
