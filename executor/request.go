package executor

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	clienterrors "github.com/jrsteele09/ainote-client/internal/errors"
	"github.com/jrsteele09/ainote-client/internal/utils"
)

type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
	MethodPatch  Method = http.MethodPatch
)

func (m Method) valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch:
		return true
	}
	return false
}

// Param is one query parameter, already rendered as text.
type Param struct {
	Name  string
	Value string
}

// Query is an ordered parameter list; it is serialised in the order the
// parameters were added, never sorted.
type Query []Param

// Add appends name=value unless value is absent (nil or a nil pointer).
// Defined values such as false, 0 and "" are always kept.
func (q Query) Add(name string, value any) Query {
	s, ok := utils.FormatScalar(value)
	if !ok {
		return q
	}
	return append(q, Param{Name: name, Value: s})
}

// Encode renders the query without the leading '?'.
func (q Query) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EscapeComponent(p.Name))
		b.WriteByte('=')
		b.WriteString(EscapeComponent(p.Value))
	}
	return b.String()
}

// EscapeComponent percent-encodes s for use as a single path segment or
// query component. Spaces become %20.
func EscapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FilePart is a file sent as multipart/form-data.
type FilePart struct {
	FieldName   string // defaults to "file"
	FileName    string
	ContentType string // defaults to application/octet-stream
	Content     io.Reader
}

// Request is the normalised description of one backend call.
type Request struct {
	Path   string
	Method Method
	Query  Query
	Body   any       // JSON body, mutually exclusive with File
	File   *FilePart // multipart body
	Header http.Header
}

// Validate checks the descriptor before anything is sent.
func (r *Request) Validate() error {
	if r == nil {
		return clienterrors.Wrapf(clienterrors.ErrInvalidRequest, "nil request")
	}
	if !r.Method.valid() {
		return clienterrors.Wrapf(clienterrors.ErrInvalidRequest, "unsupported method %q", r.Method)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return clienterrors.Wrapf(clienterrors.ErrInvalidRequest, "path %q must start with '/'", r.Path)
	}
	if r.Body != nil && r.File != nil {
		return clienterrors.Wrapf(clienterrors.ErrInvalidRequest, "%s %s has both a JSON body and a file", r.Method, r.Path)
	}
	if r.File != nil && r.File.Content == nil {
		return clienterrors.Wrapf(clienterrors.ErrInvalidRequest, "%s %s file has no content", r.Method, r.Path)
	}
	return nil
}

// URI is the path plus the encoded query, relative to the base URL.
func (r *Request) URI() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	separator := "?"
	if strings.Contains(r.Path, "?") {
		separator = "&"
	}
	return r.Path + separator + r.Query.Encode()
}

func (r *Request) String() string {
	return fmt.Sprintf("%s %s", r.Method, r.Path)
}
