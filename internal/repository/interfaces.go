package repository

import "context"

//go:generate mockgen -source=$GOFILE -destination=../service/kv_mocks_test.go -package=service_test

// KVRepo stores opaque values under string keys. Values written by Put are
// returned byte-for-byte by Get.
type KVRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
