package catalog

import (
	"bytes"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"

	"github.com/manybody/topograph/topo"
	"github.com/manybody/topograph/traverse"
)

// Key prefixes in the underlying store. Graph membership and cached
// distance matrices live in separate keyspaces over the same encoding.
var (
	prefixGraph = []byte("g/")
	prefixDist  = []byte("d/")
)

// Catalog is a persistent, deduplicating store of topologies.
//
// Membership is keyed by the canonical encoding (see Encode), so two
// structurally identical graphs occupy one slot regardless of how they were
// constructed. An ordered in-memory index mirrors the membership keyspace
// and is rebuilt on Open.
type Catalog struct {
	mu       sync.RWMutex
	db       *badger.DB
	byEnc    *redblacktree.Tree // encoding → site count
	readOnly bool
	closed   bool
}

// Open opens or creates a catalog. An empty Opts.Path yields a purely
// in-memory catalog that vanishes on Close.
func Open(opts Opts) (*Catalog, error) {
	dbOpts := badger.DefaultOptions(opts.Path)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	if opts.Path == "" {
		if opts.ReadOnly {
			return nil, errors.Wrap(ErrBadParam, "Path must be specified for a read-only catalog")
		}
		dbOpts = dbOpts.WithInMemory(true)
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: open store")
	}

	cat := &Catalog{
		db:       db,
		byEnc:    redblacktree.NewWith(byteSliceComparator),
		readOnly: opts.ReadOnly,
	}
	if err := cat.rebuildIndex(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return cat, nil
}

func byteSliceComparator(a, b interface{}) int {
	return bytes.Compare(a.([]byte), b.([]byte))
}

// rebuildIndex scans the membership keyspace into the ordered index.
func (cat *Catalog) rebuildIndex() error {
	return cat.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Prefix = prefixGraph
		iterOpts.PrefetchValues = false
		it := txn.NewIterator(iterOpts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			enc := append([]byte(nil), it.Item().Key()[len(prefixGraph):]...)
			cat.byEnc.Put(enc, siteCountOf(enc))
		}
		return nil
	})
}

// TryAdd inserts g, reporting true if the catalog did not already hold a
// structurally identical graph.
func (cat *Catalog) TryAdd(g topo.Graph) (bool, error) {
	enc := Encode(g)

	cat.mu.Lock()
	defer cat.mu.Unlock()
	if cat.closed {
		return false, ErrClosed
	}
	if cat.readOnly {
		return false, ErrReadOnly
	}
	if _, found := cat.byEnc.Get(enc); found {
		return false, nil
	}

	key := append(append([]byte(nil), prefixGraph...), enc...)
	err := cat.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, nil)
	})
	if err != nil {
		return false, errors.Wrap(err, "catalog: add graph")
	}
	cat.byEnc.Put(enc, siteCountOf(enc))
	return true, nil
}

// Contains reports whether a structurally identical graph is present.
func (cat *Catalog) Contains(g topo.Graph) (bool, error) {
	cat.mu.RLock()
	defer cat.mu.RUnlock()
	if cat.closed {
		return false, ErrClosed
	}
	_, found := cat.byEnc.Get(Encode(g))
	return found, nil
}

// Distances returns the all-pairs distance matrix for g, serving a cached
// copy when one is stored and persisting the freshly computed matrix
// otherwise. Read-only catalogs compute without persisting.
func (cat *Catalog) Distances(g topo.Graph) ([][]int, error) {
	enc := Encode(g)
	key := append(append([]byte(nil), prefixDist...), enc...)

	cat.mu.Lock()
	defer cat.mu.Unlock()
	if cat.closed {
		return nil, ErrClosed
	}

	var cached []byte
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		cached, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case err == nil:
		return decodeMatrix(cached)
	case !errors.Is(err, badger.ErrKeyNotFound):
		return nil, errors.Wrap(err, "catalog: read distances")
	}

	m := traverse.AllDistances(g)
	if cat.readOnly {
		return m, nil
	}
	err = cat.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, encodeMatrix(m))
	})
	if err != nil {
		return nil, errors.Wrap(err, "catalog: cache distances")
	}
	return m, nil
}

// NumGraphs counts the cataloged graphs with the given site count.
func (cat *Catalog) NumGraphs(siteCount int) int {
	cat.mu.RLock()
	defer cat.mu.RUnlock()
	n := 0
	for it := cat.byEnc.Iterator(); it.Next(); {
		if it.Value().(int) == siteCount {
			n++
		}
	}
	return n
}

// Len is the total number of cataloged graphs.
func (cat *Catalog) Len() int {
	cat.mu.RLock()
	defer cat.mu.RUnlock()
	return cat.byEnc.Size()
}

// Close flushes and releases the underlying store. Further calls on the
// catalog return ErrClosed.
func (cat *Catalog) Close() error {
	cat.mu.Lock()
	defer cat.mu.Unlock()
	if cat.closed {
		return ErrClosed
	}
	cat.closed = true
	return cat.db.Close()
}
