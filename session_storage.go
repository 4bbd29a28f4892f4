package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type InMemorySessionStorage struct {
	SessionMap map[string]string
	mutex      sync.Mutex
}

func NewInMemorySessionStorage() *InMemorySessionStorage {
	return &InMemorySessionStorage{
		SessionMap: make(map[string]string),
	}
}

type RedisSessionStorage struct {
	client    *redis.Client
	namespace string
}

func NewRedisSessionStorage(client *redis.Client, namespace string) *RedisSessionStorage {
	return &RedisSessionStorage{client: client, namespace: namespace}
}

// Should be safe to use in concurrency
type SessionStorage interface {
	// Store the serialized wizard session under the given sessionId.
	// Should not return an error when the value already exists,
	// it should just update in that case.
	StoreSession(sessionId string, session string) error

	// Should retrieve the session for the given sessionId
	// and return an error in any case where it fails to do so.
	RetrieveSession(sessionId string) (string, error)

	// Should remove the session and return an error if it fails to do so.
	// The value not being there should also be considered an error.
	RemoveSession(sessionId string) error
}

// ------------------------------------------------------------------------------

func createKey(namespace, sessionId string) string {
	return fmt.Sprintf("%s:wizard:%s", namespace, sessionId)
}

// Abandoned wizard sessions linger this long before Redis drops them.
const SessionTimeout time.Duration = 2 * time.Hour

func (s *RedisSessionStorage) StoreSession(sessionId string, session string) error {
	ctx := context.Background()
	return s.client.Set(ctx, createKey(s.namespace, sessionId), session, SessionTimeout).Err()
}

func (s *RedisSessionStorage) RetrieveSession(sessionId string) (string, error) {
	ctx := context.Background()
	return s.client.Get(ctx, createKey(s.namespace, sessionId)).Result()
}

func (s *RedisSessionStorage) RemoveSession(sessionId string) error {
	ctx := context.Background()
	return s.client.Del(ctx, createKey(s.namespace, sessionId)).Err()
}

// ------------------------------------------------------------------------------

func (s *InMemorySessionStorage) StoreSession(sessionId, session string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.SessionMap[sessionId] = session
	return nil
}

func (s *InMemorySessionStorage) RetrieveSession(sessionId string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if session, ok := s.SessionMap[sessionId]; ok {
		return session, nil
	} else {
		return "", fmt.Errorf("failed to find session for %s", sessionId)
	}
}

func (s *InMemorySessionStorage) RemoveSession(sessionId string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.SessionMap[sessionId]; ok {
		delete(s.SessionMap, sessionId)
		return nil
	} else {
		return fmt.Errorf("failed to remove session for %s, because it wasn't there", sessionId)
	}
}
