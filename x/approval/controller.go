package approval

import (
	"strconv"

	"github.com/iov-one/warden"
	"github.com/iov-one/warden/errors"
	"github.com/iov-one/warden/gconf"
	"github.com/iov-one/warden/orm"
)

const (
	// BucketName is where the transaction records are stored.
	BucketName = "txs"
	// SequenceName is the auto-increment id counter for transactions.
	SequenceName = "id"

	marksBucketName = "marks"
)

var (
	txBucket    = orm.NewBucket(BucketName)
	marksBucket = orm.NewBucket(marksBucketName)
	txSeq       = orm.NewSequence(BucketName, SequenceName)
)

// markKey builds the bucket key of a (transaction, principal) pair. Both
// parts are of fixed length, so keys are collision free.
func markKey(txID []byte, addr warden.Address) []byte {
	return append(append([]byte{}, txID...), addr...)
}

// TxRecord loads a transaction record by id. Returns ErrNotFound when no
// transaction with given id was ever submitted.
func TxRecord(db warden.ReadOnlyKVStore, txID []byte) (*TransactionRecord, error) {
	var rec TransactionRecord
	if err := txBucket.One(db, txID, &rec); err != nil {
		return nil, errors.Wrapf(err, "transaction %s", IDString(txID))
	}
	return &rec, nil
}

// HasConfirmed is a pure query of the confirmation mark of one owner on
// one transaction.
func HasConfirmed(db warden.ReadOnlyKVStore, txID []byte, addr warden.Address) (bool, error) {
	return marksBucket.Has(db, markKey(txID, addr))
}

// Threshold returns the required confirmation count fixed at
// initialization time.
func Threshold(db warden.ReadOnlyKVStore) (int32, error) {
	var conf Config
	if err := gconf.Load(db, "approval", &conf); err != nil {
		return 0, errors.Wrap(err, "cannot load config")
	}
	return conf.Threshold, nil
}

// SaveConfig persists the engine configuration. This is done once, during
// genesis initialization.
func SaveConfig(db warden.KVStore, conf Config) error {
	return gconf.Save(db, "approval", &conf)
}

// LatestID returns the id of the most recently submitted transaction.
// Returns ErrNotFound when nothing was submitted yet.
func LatestID(db warden.ReadOnlyKVStore) ([]byte, error) {
	_, raw, err := txSeq.Latest(db)
	return raw, err
}

// IDString renders a transaction id in the human readable form used in
// logs and notification tags.
func IDString(txID []byte) string {
	if len(txID) != 8 {
		return "(invalid)"
	}
	return strconv.FormatInt(orm.DecodeSequence(txID), 10)
}
