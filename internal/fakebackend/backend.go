// Package fakebackend is an in-process stand-in for the note backend used
// by integration tests and local CLI runs. It speaks the same routes, error
// bodies and bearer-token contract as the real service.
package fakebackend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/ainote-client/apierrors"
	"github.com/jrsteele09/ainote-client/internal/utils"
	"github.com/jrsteele09/ainote-client/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	contentTypeJSON = "application/json"
	smsCode         = "000000" // Every SMS code the fake sends
)

// Recorded is one request as the backend received it.
type Recorded struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

type failure struct {
	status int
	body   string
}

type Backend struct {
	server   *httptest.Server
	repo     *repo
	tokens   *tokens
	nowTime  func() time.Time
	requests []Recorded
	failNext []failure
	lock     sync.Mutex
}

type Option func(*Backend)

// WithNowTime sets the clock used for token issue and expiry
func WithNowTime(nowFunc func() time.Time) Option {
	return func(b *Backend) {
		b.nowTime = nowFunc
	}
}

// New starts the backend on a loopback port. Call Close when done.
func New(options ...Option) *Backend {
	b := &Backend{
		repo:    newRepo(),
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(b)
	}
	b.tokens = newTokens(b.nowTime)

	mux := http.NewServeMux()
	b.routes(mux)
	b.server = httptest.NewServer(b.record(mux))
	return b
}

func (b *Backend) URL() string {
	return b.server.URL
}

func (b *Backend) Close() {
	b.server.Close()
}

// AddAccount seeds an account and returns its id. The first tenant, if
// any, is the account's selected company.
func (b *Backend) AddAccount(username, password string, role model.Role, tenants ...string) (string, error) {
	a, err := b.repo.addAccount(username, password, role, tenants)
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

// AddCompany seeds a company and returns its id.
func (b *Backend) AddCompany(name, tenant string) string {
	c := &company{Name: name, Code: strings.ToUpper(tenant), Status: model.CompanyActive, Tenant: tenant}
	b.repo.addCompany(c)
	return c.ID
}

// SetPhone attaches a phone number to an account for SMS sign-in.
func (b *Backend) SetPhone(accountID, phone string) {
	b.repo.setPhone(accountID, phone)
}

// RevokeAllTokens invalidates every token issued so far, so the next
// authenticated call gets a 401.
func (b *Backend) RevokeAllTokens() {
	b.tokens.revokeAll()
}

// FailNext makes the next request return status and body verbatim,
// whatever its route.
func (b *Backend) FailNext(status int, body string) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.failNext = append(b.failNext, failure{status: status, body: body})
}

func (b *Backend) Requests() []Recorded {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]Recorded(nil), b.requests...)
}

func (b *Backend) LastRequest() (Recorded, bool) {
	b.lock.Lock()
	defer b.lock.Unlock()
	if len(b.requests) == 0 {
		return Recorded{}, false
	}
	return b.requests[len(b.requests)-1], true
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		b.lock.Lock()
		b.requests = append(b.requests, Recorded{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		var forced *failure
		if len(b.failNext) > 0 {
			forced = &b.failNext[0]
			b.failNext = b.failNext[1:]
		}
		b.lock.Unlock()

		if forced != nil {
			w.WriteHeader(forced.status)
			_, _ = io.WriteString(w, forced.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /auth/captcha", b.captcha)
	mux.HandleFunc("POST /auth/login", b.login)
	mux.HandleFunc("POST /auth/register", b.register)
	mux.HandleFunc("POST /auth/smsLogin", b.smsLogin)
	mux.HandleFunc("POST /auth/sendSms", b.sendSms)

	mux.HandleFunc("GET /account/me", b.requireAuth(b.me))
	mux.HandleFunc("GET /company/my", b.requireAuth(b.myCompanies))
	mux.HandleFunc("GET /company/names", b.requireAuth(b.companyNames))
	mux.HandleFunc("GET /company/page", b.requireAuth(b.companyPage))
	mux.HandleFunc("POST /company/add", b.requireAuth(b.addCompany))

	mux.HandleFunc("POST /file/upload", b.requireAuth(b.upload))
	mux.HandleFunc("GET /file", b.requireAuth(b.allFiles))
	mux.HandleFunc("GET /file/{id}", b.requireAuth(b.fileByID))

	mux.HandleFunc("GET /log", b.requireAuth(b.allLogs))
	mux.HandleFunc("POST /log", b.requireAuth(b.createLog))
}

type authedHandler func(w http.ResponseWriter, r *http.Request, a *account)

// requireAuth rejects requests without a live bearer token the way the
// real backend does: 401 with an ACCOUNT/UNAUTHORIZED body.
func (b *Backend) requireAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeAPIError(w, http.StatusUnauthorized, apierrors.CodeUnauthorized)
			return
		}
		accountID, err := b.tokens.verify(raw)
		if err != nil {
			writeAPIError(w, http.StatusUnauthorized, apierrors.CodeUnauthorized)
			return
		}
		a, found := b.repo.accountByID(accountID)
		if !found {
			writeAPIError(w, http.StatusUnauthorized, apierrors.CodeUnauthorized)
			return
		}
		next(w, r, a)
	}
}

func (b *Backend) captcha(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.CaptchaResponse{
		VerKey: uuid.New().String(),
		Image:  "data:image/png;base64,iVBORw0KGgo=",
	})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var input model.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}
	a, found := b.repo.accountByUsername(input.Username)
	if !found {
		writeAPIError(w, http.StatusBadRequest, apierrors.CodeUsernameDoesNotExist)
		return
	}
	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(input.Password)); err != nil {
		writeAPIError(w, http.StatusBadRequest, apierrors.CodePasswordIsError)
		return
	}
	b.signIn(w, a)
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var input model.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}
	if input.VerKey == "" || input.VerCode == "" {
		writeAPIError(w, http.StatusBadRequest, apierrors.CodeCaptchaIsError)
		return
	}
	if _, exists := b.repo.accountByUsername(input.Username); exists {
		writeAPIError(w, http.StatusBadRequest, apierrors.CodeUsernameAlreadyExists)
		return
	}
	a, err := b.repo.addAccount(input.Username, input.Password, model.RoleUser, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	b.repo.setPhone(a.ID, utils.Value(input.Phone))
	b.signIn(w, a)
}

func (b *Backend) smsLogin(w http.ResponseWriter, r *http.Request) {
	var input model.SmsLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}
	a, found := b.repo.accountByPhone(input.Phone)
	if !found {
		writeAPIError(w, http.StatusBadRequest, apierrors.CodePhoneDoesNotExist)
		return
	}
	if input.Code != smsCode {
		writeAPIError(w, http.StatusBadRequest, apierrors.CodeSmsCodeIsError)
		return
	}
	b.signIn(w, a)
}

func (b *Backend) sendSms(w http.ResponseWriter, r *http.Request) {
	if _, found := b.repo.accountByPhone(r.URL.Query().Get("phone")); !found {
		writeAPIError(w, http.StatusBadRequest, apierrors.CodePhoneDoesNotExist)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (b *Backend) signIn(w http.ResponseWriter, a *account) {
	tenant := ""
	if len(a.Tenants) > 0 {
		tenant = a.Tenants[0]
	}
	token, err := b.tokens.issue(a.ID, tenant)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, model.AuthResponse{Token: token, ID: a.ID, Role: a.Role, Tenant: tenant})
}

func (b *Backend) me(w http.ResponseWriter, _ *http.Request, a *account) {
	view := model.AccountSimple{
		ID:               a.ID,
		Username:         a.Username,
		Role:             a.Role,
		AccountCompanies: []model.AccountSimpleMembership{},
	}
	if a.Phone != "" {
		view.Phone = utils.Ptr(a.Phone)
	}
	for i, tenant := range a.Tenants {
		c, found := b.repo.companyByTenant(tenant)
		if !found {
			continue
		}
		view.AccountCompanies = append(view.AccountCompanies, model.AccountSimpleMembership{
			ID:         a.ID + ":" + c.ID,
			ChoiceFlag: i == 0,
			Role:       a.Role,
			Company:    model.AccountSimpleCompany{ID: c.ID, Tenant: c.Tenant, Name: c.Name},
		})
	}
	writeJSON(w, http.StatusOK, view)
}

func (b *Backend) myCompanies(w http.ResponseWriter, _ *http.Request, a *account) {
	names := make([]model.CompanyName, 0, len(a.Tenants))
	for _, tenant := range a.Tenants {
		if c, found := b.repo.companyByTenant(tenant); found {
			names = append(names, model.CompanyName{ID: c.ID, Name: c.Name})
		}
	}
	writeJSON(w, http.StatusOK, names)
}

func (b *Backend) companyNames(w http.ResponseWriter, _ *http.Request, _ *account) {
	companies := b.repo.listCompanies()
	names := make([]model.CompanyName, 0, len(companies))
	for _, c := range companies {
		names = append(names, model.CompanyName{ID: c.ID, Name: c.Name})
	}
	writeJSON(w, http.StatusOK, names)
}

func (b *Backend) companyPage(w http.ResponseWriter, r *http.Request, _ *account) {
	q := r.URL.Query()
	keywords := q.Get("keywords")
	status := q.Get("status")

	rows := make([]model.CompanyListItem, 0)
	for _, c := range b.repo.listCompanies() {
		if keywords != "" && !strings.Contains(c.Name, keywords) {
			continue
		}
		if status != "" && string(c.Status) != status {
			continue
		}
		rows = append(rows, model.CompanyListItem{
			ID: c.ID, Name: c.Name, Code: c.Code, Address: c.Address, Tenant: c.Tenant, Contact: c.Contact,
		})
	}
	writeJSON(w, http.StatusOK, paginate(rows, q.Get("pageIndex"), q.Get("pageSize")))
}

func (b *Backend) addCompany(w http.ResponseWriter, r *http.Request, _ *account) {
	q := r.URL.Query()
	c := &company{
		Name:   q.Get("name"),
		Code:   q.Get("code"),
		Status: model.CompanyStatus(q.Get("status")),
		Tenant: q.Get("tenant"),
	}
	if q.Has("contact") {
		c.Contact = utils.Ptr(q.Get("contact"))
	}
	if q.Has("address") {
		c.Address = utils.Ptr(q.Get("address"))
	}
	if c.Name == "" || c.Tenant == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "name and tenant are required"})
		return
	}
	b.repo.addCompany(c)
	writeJSON(w, http.StatusOK, c.ID)
}

func (b *Backend) upload(w http.ResponseWriter, r *http.Request, a *account) {
	folder := r.URL.Query().Get("folder")
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file part", http.StatusBadRequest)
		return
	}
	defer file.Close()
	size, err := io.Copy(io.Discard, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := uuid.New().String()
	stored := id + "-" + header.Filename
	now := b.nowTime().UTC().Format(time.RFC3339)
	f := model.StaticFile{
		CreatedTime:  utils.Ptr(now),
		ModifiedTime: utils.Ptr(now),
		ID:           utils.Ptr(id),
		FileName:     utils.Ptr(stored),
		OriginalName: utils.Ptr(header.Filename),
		FileSize:     utils.Ptr(size),
		FilePath:     utils.Ptr(folder + "/" + stored),
		MimeType:     utils.Ptr(header.Header.Get("Content-Type")),
		FileType:     utils.Ptr(fileTypeOf(header.Header.Get("Content-Type"))),
		UploaderID:   utils.Ptr(a.ID),
	}
	b.repo.putFile(f)
	writeJSON(w, http.StatusOK, f)
}

func (b *Backend) allFiles(w http.ResponseWriter, _ *http.Request, _ *account) {
	writeJSON(w, http.StatusOK, b.repo.listFiles())
}

func (b *Backend) fileByID(w http.ResponseWriter, r *http.Request, _ *account) {
	f, found := b.repo.file(r.PathValue("id"))
	if !found {
		// The real backend answers an unknown id with an empty 200.
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (b *Backend) allLogs(w http.ResponseWriter, _ *http.Request, _ *account) {
	writeJSON(w, http.StatusOK, b.repo.listLogs())
}

func (b *Backend) createLog(w http.ResponseWriter, r *http.Request, a *account) {
	var input model.LogSpecification
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}
	now := b.nowTime().UTC().Format(time.RFC3339)
	entry := model.Log{
		CreatedTime:    utils.Ptr(now),
		ModifiedTime:   utils.Ptr(now),
		ID:             utils.Ptr(uuid.New().String()),
		AccountID:      utils.Ptr(a.ID),
		Action:         input.Action,
		TargetEntity:   input.TargetEntity,
		EntityID:       input.EntityID,
		IPAddress:      input.IPAddress,
		UserAgent:      input.UserAgent,
		RequestMethod:  input.RequestMethod,
		RequestURL:     input.RequestURL,
		ResponseStatus: input.ResponseStatus,
		ErrorMessage:   input.ErrorMessage,
	}
	b.repo.appendLog(entry)
	writeJSON(w, http.StatusOK, entry)
}

func fileTypeOf(contentType string) model.FileType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return model.FileImage
	case strings.HasPrefix(contentType, "video/"):
		return model.FileVideo
	case strings.HasPrefix(contentType, "audio/"):
		return model.FileAudio
	case contentType == "application/pdf", strings.HasPrefix(contentType, "text/"):
		return model.FileDocument
	}
	return model.FileOther
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeAPIError writes the backend's structured error body.
func writeAPIError(w http.ResponseWriter, status int, code apierrors.Code) {
	writeJSON(w, status, map[string]string{
		"family": string(apierrors.FamilyAccount),
		"code":   string(code),
	})
}
