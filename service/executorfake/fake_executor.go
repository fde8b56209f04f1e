package executorfake

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"

	"github.com/jrsteele09/ainote-client/executor"
)

var _ executor.Executor = (*FakeExecutor)(nil)

// Call is one recorded Execute invocation.
type Call struct {
	Request     executor.Request
	URI         string // path plus encoded query
	Body        []byte // JSON body as it would be sent, nil when absent
	FileContent []byte // multipart file content, nil when absent
}

type response struct {
	body json.RawMessage
	err  error
}

// FakeExecutor records every request and answers from canned responses
// keyed by "METHOD path". Unknown routes return an empty body.
type FakeExecutor struct {
	calls     []Call
	responses map[string]response
	lock      sync.RWMutex
}

func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{
		responses: make(map[string]response),
	}
}

func routeKey(method executor.Method, path string) string {
	return string(method) + " " + path
}

// Respond sets the raw body returned for method and path.
func (f *FakeExecutor) Respond(method executor.Method, path, body string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.responses[routeKey(method, path)] = response{body: json.RawMessage(body)}
}

// Fail makes method and path return err.
func (f *FakeExecutor) Fail(method executor.Method, path string, err error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.responses[routeKey(method, path)] = response{err: err}
}

func (f *FakeExecutor) Execute(_ context.Context, req *executor.Request) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	call := Call{Request: *req, URI: req.URI()}
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		call.Body = b
	}
	if req.File != nil {
		content, err := io.ReadAll(req.File.Content)
		if err != nil {
			return nil, err
		}
		call.FileContent = content
		call.Request.File = &executor.FilePart{
			FieldName:   req.File.FieldName,
			FileName:    req.File.FileName,
			ContentType: req.File.ContentType,
			Content:     strings.NewReader(string(content)),
		}
	}

	f.lock.Lock()
	defer f.lock.Unlock()
	f.calls = append(f.calls, call)
	resp := f.responses[routeKey(req.Method, req.Path)]
	return resp.body, resp.err
}

func (f *FakeExecutor) Calls() []Call {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return append([]Call(nil), f.calls...)
}

// Last returns the most recent call; ok is false when nothing was sent.
func (f *FakeExecutor) Last() (call Call, ok bool) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	if len(f.calls) == 0 {
		return Call{}, false
	}
	return f.calls[len(f.calls)-1], true
}

func (f *FakeExecutor) Reset() {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.calls = nil
}
