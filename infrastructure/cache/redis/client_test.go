package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"cocktails-app-api/pkg/config"
)

// Integration tests run only when REDIS_TEST_ADDR points at a live instance.
func testConfig(t *testing.T) config.RedisConfig {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST_ADDR to run")
	}
	return config.RedisConfig{Address: addr, KeyPrefix: "cocktails-test:"}
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{})

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: "127.0.0.1:1"})

	if err == nil {
		cache.Close()
		t.Error("NewRedisCache should fail when the server is unreachable")
	}
}

func TestRedisCache_RoundTrip(t *testing.T) {
	cache, err := NewRedisCache(testConfig(t))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	key := "cocktaildb:list:i"
	value := []byte(`["Gin","Vodka"]`)

	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", got, value)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, key); err != ErrCacheMiss {
		t.Errorf("Get after delete = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_Set_AppliesTTL(t *testing.T) {
	cache, err := NewRedisCache(testConfig(t))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	if err := cache.Set(ctx, "ttl-key", []byte("v"), 100*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	if _, err := cache.Get(ctx, "ttl-key"); err != ErrCacheMiss {
		t.Errorf("Get after expiry = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_Delete_NonExistentKey(t *testing.T) {
	cache, err := NewRedisCache(testConfig(t))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	defer cache.Close()

	if err := cache.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("Delete should return nil for non-existent key, got: %v", err)
	}
}
