package fakebackend

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jrsteele09/ainote-client/model"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	ID           string
	Username     string
	Phone        string
	PasswordHash []byte
	Role         model.Role
	Status       model.UserStatus
	Tenants      []string // Company tenants, first one is the selected company
}

type company struct {
	ID      string
	Name    string
	Code    string
	Contact *string
	Address *string
	Status  model.CompanyStatus
	Tenant  string
}

// repo is the backend's in-memory state.
type repo struct {
	accounts  map[string]*account
	usernames map[string]string // username to account id
	companies map[string]*company
	files     map[string]model.StaticFile
	logs      []model.Log
	lock      sync.RWMutex
}

func newRepo() *repo {
	return &repo{
		accounts:  make(map[string]*account),
		usernames: make(map[string]string),
		companies: make(map[string]*company),
		files:     make(map[string]model.StaticFile),
	}
}

func (r *repo) addAccount(username, password string, role model.Role, tenants []string) (*account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	r.lock.Lock()
	defer r.lock.Unlock()

	a := &account{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Status:       model.UserActive,
		Tenants:      tenants,
	}
	r.accounts[a.ID] = a
	r.usernames[username] = a.ID
	return a, nil
}

func (r *repo) setPhone(accountID, phone string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if a, ok := r.accounts[accountID]; ok {
		a.Phone = phone
	}
}

func (r *repo) accountByUsername(username string) (*account, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	id, ok := r.usernames[username]
	if !ok {
		return nil, false
	}
	return r.accounts[id], true
}

func (r *repo) accountByID(id string) (*account, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	a, ok := r.accounts[id]
	return a, ok
}

func (r *repo) accountByPhone(phone string) (*account, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for _, a := range r.accounts {
		if a.Phone != "" && a.Phone == phone {
			return a, true
		}
	}
	return nil, false
}

func (r *repo) addCompany(c *company) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	r.companies[c.ID] = c
}

func (r *repo) companyByTenant(tenant string) (*company, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for _, c := range r.companies {
		if c.Tenant == tenant {
			return c, true
		}
	}
	return nil, false
}

// listCompanies returns every company ordered by name.
func (r *repo) listCompanies() []*company {
	r.lock.RLock()
	defer r.lock.RUnlock()

	companies := make([]*company, 0, len(r.companies))
	for _, c := range r.companies {
		companies = append(companies, c)
	}
	sort.Slice(companies, func(i, j int) bool {
		return companies[i].Name < companies[j].Name
	})
	return companies
}

func (r *repo) putFile(f model.StaticFile) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.files[*f.ID] = f
}

func (r *repo) file(id string) (model.StaticFile, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	f, ok := r.files[id]
	return f, ok
}

func (r *repo) listFiles() []model.StaticFile {
	r.lock.RLock()
	defer r.lock.RUnlock()

	files := make([]model.StaticFile, 0, len(r.files))
	for _, f := range r.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return *files[i].ID < *files[j].ID
	})
	return files
}

func (r *repo) appendLog(l model.Log) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.logs = append(r.logs, l)
}

func (r *repo) listLogs() []model.Log {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]model.Log{}, r.logs...)
}
