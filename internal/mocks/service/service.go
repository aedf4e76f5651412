// Package service holds testify doubles for the domain service ports.
package service

import (
	"context"
	"io"
	"time"

	"scoop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockPasswordHasher is a testify double for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t testingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	register(&m.Mock, t)

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a testify double for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	register(&m.Mock, t)

	return m
}

func (m *MockTokenService) GenerateTokens(subject service.Subject) (string, string, error) {
	args := m.Called(subject)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) GenerateAccessToken(subject service.Subject) (string, error) {
	args := m.Called(subject)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockEventPublisher is a testify double for service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher(t testingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	register(&m.Mock, t)

	return m
}

func (m *MockEventPublisher) PublishServiceOrder(ctx context.Context, event *service.ServiceOrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockPickupCodeService is a testify double for service.PickupCodeService.
type MockPickupCodeService struct {
	mock.Mock
}

func NewMockPickupCodeService(t testingT) *MockPickupCodeService {
	m := &MockPickupCodeService{}
	register(&m.Mock, t)

	return m
}

func (m *MockPickupCodeService) GeneratePickupCode(orderID uuid.UUID) ([]byte, error) {
	args := m.Called(orderID)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

func (m *MockPickupCodeService) ParsePickupCode(content string) (uuid.UUID, error) {
	args := m.Called(content)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockPhotoStorage is a testify double for service.PhotoStorage.
type MockPhotoStorage struct {
	mock.Mock
}

func NewMockPhotoStorage(t testingT) *MockPhotoStorage {
	m := &MockPhotoStorage{}
	register(&m.Mock, t)

	return m
}

func (m *MockPhotoStorage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)

	return args.String(0), args.Error(1)
}

func (m *MockPhotoStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)

	return rc, args.String(1), args.Error(2)
}

func (m *MockPhotoStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// MockMetricsRecorder is a testify double for service.MetricsRecorder.
type MockMetricsRecorder struct {
	mock.Mock
}

func NewMockMetricsRecorder(t testingT) *MockMetricsRecorder {
	m := &MockMetricsRecorder{}
	register(&m.Mock, t)

	return m
}

func (m *MockMetricsRecorder) RecordCacheLookup(resource string, hit bool) {
	m.Called(resource, hit)
}

func (m *MockMetricsRecorder) RecordServiceOrder(total float64, err error) {
	m.Called(total, err)
}
