package session

import (
	"errors"
	"sync"

	clienterrors "github.com/jrsteele09/ainote-client/internal/errors"
	"github.com/rs/zerolog"
)

var _ Store = (*PersistentStore)(nil)

// PersistentStore implements Store over a Medium. Every operation is one
// scoped acquisition of the medium: lock, load, apply, save.
type PersistentStore struct {
	medium Medium
	log    zerolog.Logger
	lock   sync.Mutex
}

// StoreOption configures a PersistentStore.
type StoreOption func(*PersistentStore)

// WithLogger sets the logger used to report unreadable media.
func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *PersistentStore) {
		s.log = log
	}
}

// NewStore returns a store persisting to medium.
func NewStore(medium Medium, options ...StoreOption) *PersistentStore {
	s := &PersistentStore{
		medium: medium,
		log:    zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Get returns the current session. An unreadable medium reads as an empty
// session.
func (s *PersistentStore) Get() Session {
	var current Session
	err := s.withEntries(false, func(entries map[string]string) bool {
		current = fromEntries(entries)
		return false
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("session medium unreadable, treating session as empty")
		return Session{}
	}
	return current
}

func (s *PersistentStore) HasToken() bool {
	return s.Get().HasToken()
}

// Set merges update into the persisted session.
func (s *PersistentStore) Set(update Update) error {
	err := s.withEntries(false, func(entries map[string]string) bool {
		apply(entries, KeyToken, update.Token)
		apply(entries, KeyUserID, update.UserID)
		if update.Role != nil {
			role := string(*update.Role)
			apply(entries, KeyRole, &role)
		}
		apply(entries, KeyTenantID, update.TenantID)
		return true
	})
	return clienterrors.Wrapf(err, "[session.Set]")
}

// Clear removes every session field. It overwrites a medium that cannot be
// read at all, so it only fails when the empty session cannot be saved.
func (s *PersistentStore) Clear() error {
	err := s.withEntries(true, func(entries map[string]string) bool {
		for _, key := range []string{KeyToken, KeyUserID, KeyRole, KeyTenantID} {
			delete(entries, key)
		}
		return true
	})
	return clienterrors.Wrapf(err, "[session.Clear]")
}

// withEntries is the only place the medium is touched. fn reports whether
// the entries were changed and must be saved. Corrupt content always starts
// over from an empty session; other load failures do so only when
// overwriteUnreadable is set.
func (s *PersistentStore) withEntries(overwriteUnreadable bool, fn func(entries map[string]string) bool) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	entries, err := s.medium.Load()
	if err != nil {
		if !overwriteUnreadable && !errors.Is(err, ErrCorruptMedium) {
			return clienterrors.Wrapf(clienterrors.ErrSessionMedium, "load: %v", err)
		}
		s.log.Warn().Err(err).Msg("session medium unreadable, starting from an empty session")
		entries = nil
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	if !fn(entries) {
		return nil
	}
	if err := s.medium.Save(entries); err != nil {
		return clienterrors.Wrapf(clienterrors.ErrSessionMedium, "save: %v", err)
	}
	return nil
}

func apply(entries map[string]string, key string, value *string) {
	if value == nil {
		return
	}
	if *value == "" {
		delete(entries, key)
		return
	}
	entries[key] = *value
}

func fromEntries(entries map[string]string) Session {
	return Session{
		Token:    entries[KeyToken],
		UserID:   entries[KeyUserID],
		Role:     Role(entries[KeyRole]),
		TenantID: entries[KeyTenantID],
	}
}
