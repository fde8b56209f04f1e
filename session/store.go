package session

import "errors"

// ErrCorruptMedium is returned (wrapped) by a Medium whose stored content
// cannot be decoded. Writes replace such content instead of failing.
var ErrCorruptMedium = errors.New("session medium holds undecodable data")

// Store owns the persisted session. Writes are durable as soon as they
// return and are visible to every call made afterwards.
type Store interface {
	Get() Session
	Set(update Update) error
	Clear() error
	HasToken() bool
}

// Medium is the durable key/value storage a PersistentStore sits on.
type Medium interface {
	Load() (map[string]string, error)
	Save(entries map[string]string) error
}

// Keys of the persisted entries.
const (
	KeyToken    = "auth_token"
	KeyUserID   = "user_id"
	KeyRole     = "user_role"
	KeyTenantID = "auth_tenant"
)
