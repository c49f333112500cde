package repository

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

// SessionStore implements scs.Store on the sessions bucket, so session
// records live in the same database as the users they reference.
type SessionStore struct {
	db *bolt.DB
}

func (s *Store) Sessions() *SessionStore {
	return &SessionStore{db: s.db}
}

type sessionRecord struct {
	Data   []byte    `json:"data"`
	Expiry time.Time `json:"expiry"`
}

// Find returns the session data for a token. An expired or missing record
// reports found == false.
func (s *SessionStore) Find(token string) ([]byte, bool, error) {
	var (
		data  []byte
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketSessions).Get([]byte(token))
		if raw == nil {
			return nil
		}
		var rec sessionRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return err
		}
		if time.Now().After(rec.Expiry) {
			return nil
		}
		data = append([]byte(nil), rec.Data...)
		found = true
		return nil
	})
	return data, found, err
}

func (s *SessionStore) Commit(token string, b []byte, expiry time.Time) error {
	raw, err := json.Marshal(sessionRecord{Data: b, Expiry: expiry})
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSessions).Put([]byte(token), raw)
	})
}

func (s *SessionStore) Delete(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSessions).Delete([]byte(token))
	})
}
