package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spendwise/spendwise/internal/config"
	"github.com/spendwise/spendwise/internal/model"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	bucketUsers     = []byte("users")
	bucketUsernames = []byte("usernames")
	bucketTxns      = []byte("transactions")
	bucketTxnByUser = []byte("txn_by_user")
	bucketSessions  = []byte("sessions")
)

// userRecord is the persisted shape of a user. model.User excludes the
// password hash from json output, so the record carries it explicitly.
type userRecord struct {
	model.User
	Password string `json:"password"`
}

// Store is a bbolt-backed document store holding users, transactions and
// session records in a single database file.
type Store struct {
	db  *bolt.DB
	log *zap.Logger
}

type Params struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Log    *zap.Logger
}

func New(p Params) (*Store, error) {
	s, err := Open(p.Config.Database.Path, p.Log)
	if err != nil {
		return nil, err
	}

	p.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return s.Close()
		},
	})

	return s, nil
}

// Open opens the database file and ensures all buckets exist.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketUsers, bucketUsernames, bucketTxns, bucketTxnByUser, bucketSessions} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	rec, err := json.Marshal(userRecord{User: *user, Password: user.Password})
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		names := tx.Bucket(bucketUsernames)
		if names.Get([]byte(user.Username)) != nil {
			return ErrDuplicateUser
		}
		if err := names.Put([]byte(user.Username), []byte(user.ID)); err != nil {
			return err
		}
		return tx.Bucket(bucketUsers).Put([]byte(user.ID), rec)
	})
}

func (s *Store) UserByID(_ context.Context, id string) (*model.User, error) {
	var user *model.User
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketUsers).Get([]byte(id))
		if raw == nil {
			return ErrNotFound
		}
		u, err := decodeUser(raw)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	return user, err
}

func (s *Store) UserByUsername(_ context.Context, username string) (*model.User, error) {
	var user *model.User
	err := s.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketUsernames).Get([]byte(username))
		if id == nil {
			return ErrNotFound
		}
		raw := tx.Bucket(bucketUsers).Get(id)
		if raw == nil {
			return ErrNotFound
		}
		u, err := decodeUser(raw)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	return user, err
}

func decodeUser(raw []byte) (*model.User, error) {
	var rec userRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	user := rec.User
	user.Password = rec.Password
	return &user, nil
}

func (s *Store) CreateTransaction(_ context.Context, txn *model.Transaction) error {
	raw, err := json.Marshal(txn)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketTxns).Put([]byte(txn.ID), raw); err != nil {
			return err
		}
		owned, err := tx.Bucket(bucketTxnByUser).CreateBucketIfNotExists([]byte(txn.UserID))
		if err != nil {
			return err
		}
		return owned.Put([]byte(txn.ID), nil)
	})
}

func (s *Store) TransactionByID(_ context.Context, id string) (*model.Transaction, error) {
	var txn *model.Transaction
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketTxns).Get([]byte(id))
		if raw == nil {
			return ErrNotFound
		}
		txn = &model.Transaction{}
		return json.Unmarshal(raw, txn)
	})
	return txn, err
}

func (s *Store) TransactionsByUser(_ context.Context, userID string) ([]*model.Transaction, error) {
	var txns []*model.Transaction
	err := s.db.View(func(tx *bolt.Tx) error {
		owned := tx.Bucket(bucketTxnByUser).Bucket([]byte(userID))
		if owned == nil {
			return nil
		}
		all := tx.Bucket(bucketTxns)
		return owned.ForEach(func(id, _ []byte) error {
			raw := all.Get(id)
			if raw == nil {
				s.log.Warn("dangling transaction index entry", zap.String("id", string(id)))
				return nil
			}
			txn := &model.Transaction{}
			if err := json.Unmarshal(raw, txn); err != nil {
				return err
			}
			txns = append(txns, txn)
			return nil
		})
	})
	return txns, err
}

func (s *Store) UpdateTransaction(_ context.Context, txn *model.Transaction) error {
	raw, err := json.Marshal(txn)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		all := tx.Bucket(bucketTxns)
		if all.Get([]byte(txn.ID)) == nil {
			return ErrNotFound
		}
		return all.Put([]byte(txn.ID), raw)
	})
}

func (s *Store) DeleteTransaction(_ context.Context, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		all := tx.Bucket(bucketTxns)
		raw := all.Get([]byte(id))
		if raw == nil {
			return ErrNotFound
		}
		var txn model.Transaction
		if err := json.Unmarshal(raw, &txn); err != nil {
			return err
		}
		if owned := tx.Bucket(bucketTxnByUser).Bucket([]byte(txn.UserID)); owned != nil {
			if err := owned.Delete([]byte(id)); err != nil {
				return err
			}
		}
		return all.Delete([]byte(id))
	})
}
