package executor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	clienterrors "github.com/jrsteele09/ainote-client/internal/errors"
)

const (
	contentTypeJSON      = "application/json"
	defaultFileFieldName = "file"
)

// encodeBody serialises the request body and returns the matching
// Content-Type.
func encodeBody(r *Request) (io.Reader, string, error) {
	if r.File != nil {
		return encodeMultipart(r.File)
	}
	if r.Body == nil {
		return nil, contentTypeJSON, nil
	}
	b, err := json.Marshal(r.Body)
	if err != nil {
		return nil, "", clienterrors.Wrapf(clienterrors.ErrInvalidRequest, "encode %s body: %v", r, err)
	}
	return bytes.NewReader(b), contentTypeJSON, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func encodeMultipart(file *FilePart) (io.Reader, string, error) {
	fieldName := file.FieldName
	if fieldName == "" {
		fieldName = defaultFileFieldName
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fileName := file.FileName
	if fileName == "" {
		fileName = fieldName
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fieldName), quoteEscaper.Replace(fileName)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", clienterrors.Wrapf(clienterrors.ErrInvalidRequest, "create multipart part: %v", err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, "", clienterrors.Wrapf(clienterrors.ErrInvalidRequest, "read upload content: %v", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", clienterrors.Wrapf(clienterrors.ErrInvalidRequest, "close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType(), nil
}
