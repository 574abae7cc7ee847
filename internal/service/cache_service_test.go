package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
)

type stubCacheRepo struct {
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newStubCacheRepo() *stubCacheRepo {
	return &stubCacheRepo{entries: map[string][]byte{}}
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if s.getErr != nil {
		return s.getErr
	}
	raw, ok := s.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.entries[key] = raw
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	s.entries = map[string][]byte{}
	return nil
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := newStubCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var missed []string
	require.False(t, svc.Get(context.Background(), "k", &missed))

	svc.Set(context.Background(), "k", []string{"a", "b"})

	var got []string
	require.True(t, svc.Get(context.Background(), "k", &got))
	require.Equal(t, []string{"a", "b"}, got)

	svc.Invalidate(context.Background(), "*")
	require.False(t, svc.Get(context.Background(), "k", &got))
}

func TestCacheServiceDisabledAlwaysMisses(t *testing.T) {
	repo := newStubCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	svc.Set(context.Background(), "k", "v")
	require.Empty(t, repo.entries)

	var got string
	require.False(t, svc.Get(context.Background(), "k", &got))
	require.False(t, svc.Enabled())
}

func TestCacheServiceFailureDegradesToMiss(t *testing.T) {
	repo := newStubCacheRepo()
	repo.getErr = errors.New("connection refused")
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var got string
	require.False(t, svc.Get(context.Background(), "k", &got))
}

func TestCacheServiceNilReceiverIsSafe(t *testing.T) {
	var svc *CacheService
	require.False(t, svc.Enabled())
}
