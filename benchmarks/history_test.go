package benchmarks

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/randalmurphal/manada/pkg/manada/history"
)

func newRecord() *history.Record {
	return history.NewRecord("length", "km", "dm", decimal.NewFromInt(1), decimal.NewFromInt(10000), 2)
}

// BenchmarkMemoryStore_Save measures in-memory history writes.
func BenchmarkMemoryStore_Save(b *testing.B) {
	store := history.NewMemoryStore()
	defer store.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Save(newRecord())
	}
}

// BenchmarkSQLiteStore_Save measures SQLite history writes.
func BenchmarkSQLiteStore_Save(b *testing.B) {
	store := createSQLiteStore(b)
	defer store.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Save(newRecord())
	}
}

// BenchmarkSQLiteStore_List measures reading the 20 newest records.
func BenchmarkSQLiteStore_List(b *testing.B) {
	store := createSQLiteStore(b)
	defer store.Close()
	for i := 0; i < 200; i++ {
		_ = store.Save(newRecord())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.List(20)
	}
}

// BenchmarkRecord_Marshal measures JSON encoding of a record.
func BenchmarkRecord_Marshal(b *testing.B) {
	r := newRecord()
	for i := 0; i < b.N; i++ {
		_, _ = r.Marshal()
	}
}

func createSQLiteStore(b *testing.B) *history.SQLiteStore {
	b.Helper()
	store, err := history.NewSQLiteStore(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatal(err)
	}
	return store
}
