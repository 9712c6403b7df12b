package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/opheliasgarden/nursery-backend/pkg/logger"
	"github.com/opheliasgarden/nursery-backend/pkg/redis"
	"github.com/shopspring/decimal"
)

type fakeKV struct {
	values map[string]string
	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	val, ok := f.values[key]
	if !ok {
		return "", redis.Nil
	}
	return val, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value.(string)
	return nil
}

func (f *fakeKV) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeKV) Ping(context.Context) error { return nil }

func (f *fakeKV) CartKey(token string) string { return "ophelia:cart:" + token }

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestRedisStoreRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store, err := NewRedisStore(kv, time.Hour, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := AddItem(NewCart(), sampleItem)
	if err := store.Save(context.Background(), "tok", c); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].SKU != sampleItem.SKU {
		t.Fatalf("unexpected loaded cart %+v", loaded)
	}
	if !loaded.Items[0].Price.Equal(decimal.NewFromFloat(8.5)) {
		t.Fatalf("price lost in serialization: %s", loaded.Items[0].Price)
	}
}

func TestRedisStoreMissingKeyYieldsEmptyCart(t *testing.T) {
	store, _ := NewRedisStore(newFakeKV(), time.Hour, testLogger())
	loaded, err := store.Load(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("missing key must not error: %v", err)
	}
	if len(loaded.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", loaded.Items)
	}
}

func TestRedisStoreCorruptValueYieldsEmptyCart(t *testing.T) {
	kv := newFakeKV()
	kv.values[kv.CartKey("tok")] = "{not json"
	store, _ := NewRedisStore(kv, time.Hour, testLogger())

	loaded, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("corrupt value must not error: %v", err)
	}
	if len(loaded.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", loaded.Items)
	}
}

func TestRedisStoreTransportErrorYieldsEmptyCart(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("connection refused")
	store, _ := NewRedisStore(kv, time.Hour, testLogger())

	loaded, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("read errors must recover locally: %v", err)
	}
	if len(loaded.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", loaded.Items)
	}
}

func TestRedisStoreClear(t *testing.T) {
	kv := newFakeKV()
	store, _ := NewRedisStore(kv, time.Hour, testLogger())
	_ = store.Save(context.Background(), "tok", AddItem(NewCart(), sampleItem))

	if err := store.Clear(context.Background(), "tok"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(kv.values) != 0 {
		t.Fatalf("expected key removed, got %v", kv.values)
	}
}

func TestRedisStoreSerializationShape(t *testing.T) {
	kv := newFakeKV()
	store, _ := NewRedisStore(kv, time.Hour, testLogger())
	_ = store.Save(context.Background(), "tok", AddItem(NewCart(), sampleItem))

	var doc map[string]any
	if err := json.Unmarshal([]byte(kv.values[kv.CartKey("tok")]), &doc); err != nil {
		t.Fatalf("stored value is not json: %v", err)
	}
	if _, ok := doc["items"]; !ok {
		t.Fatalf("expected items field, got %v", doc)
	}
	if _, ok := doc["updated_at"]; !ok {
		t.Fatalf("expected updated_at field, got %v", doc)
	}
}

func TestNewRedisStoreRequiresClient(t *testing.T) {
	if _, err := NewRedisStore(nil, time.Hour, testLogger()); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	loaded, err := store.Load(context.Background(), "tok")
	if err != nil || len(loaded.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v err=%v", loaded, err)
	}

	c := AddItem(NewCart(), sampleItem)
	if err := store.Save(context.Background(), "tok", c); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, _ = store.Load(context.Background(), "tok")
	if len(loaded.Items) != 1 {
		t.Fatalf("expected saved cart back, got %+v", loaded)
	}

	if err := store.Clear(context.Background(), "tok"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	loaded, _ = store.Load(context.Background(), "tok")
	if len(loaded.Items) != 0 {
		t.Fatalf("expected cleared cart, got %+v", loaded)
	}
}
