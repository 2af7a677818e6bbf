package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
)

// --- Mock RecordRepository (based on service usage) ---
type MockRecordRepository struct {
	mock.Mock
	SaveRecordFn       func(ctx context.Context, record domain.Record) error
	FindRecordByIDFn   func(ctx context.Context, recordID string) (*domain.Record, error)
	FindRecordsFn      func(ctx context.Context, limit, offset int) ([]domain.Record, error)
	UpdateRecordFn     func(ctx context.Context, record domain.Record) error
	NextRecordNumberFn func(ctx context.Context, recordType domain.RecordType) (string, error)
}

func (m *MockRecordRepository) SaveRecord(ctx context.Context, record domain.Record) error {
	if m.SaveRecordFn != nil {
		return m.SaveRecordFn(ctx, record)
	}
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error) {
	if m.FindRecordByIDFn != nil {
		return m.FindRecordByIDFn(ctx, recordID)
	}
	args := m.Called(ctx, recordID)
	var record *domain.Record
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.Record)
	}
	return record, args.Error(1)
}

func (m *MockRecordRepository) FindRecords(ctx context.Context, limit, offset int) ([]domain.Record, error) {
	if m.FindRecordsFn != nil {
		return m.FindRecordsFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var records []domain.Record
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.Record)
	}
	return records, args.Error(1)
}

func (m *MockRecordRepository) UpdateRecord(ctx context.Context, record domain.Record) error {
	if m.UpdateRecordFn != nil {
		return m.UpdateRecordFn(ctx, record)
	}
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) NextRecordNumber(ctx context.Context, recordType domain.RecordType) (string, error) {
	if m.NextRecordNumberFn != nil {
		return m.NextRecordNumberFn(ctx, recordType)
	}
	args := m.Called(ctx, recordType)
	return args.String(0), args.Error(1)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
	AppendEntryFn           func(ctx context.Context, entry domain.AuditLogEntry) error
	FindEntriesByRecordIDFn func(ctx context.Context, recordID string) ([]domain.AuditLogEntry, error)
	FindEntriesAfterFn      func(ctx context.Context, recordID string, after time.Time, afterEntryID string, limit int) ([]domain.AuditLogEntry, error)
}

func (m *MockAuditLogRepository) AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	if m.AppendEntryFn != nil {
		return m.AppendEntryFn(ctx, entry)
	}
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindEntriesByRecordID(ctx context.Context, recordID string) ([]domain.AuditLogEntry, error) {
	if m.FindEntriesByRecordIDFn != nil {
		return m.FindEntriesByRecordIDFn(ctx, recordID)
	}
	args := m.Called(ctx, recordID)
	var entries []domain.AuditLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLogEntry)
	}
	return entries, args.Error(1)
}

func (m *MockAuditLogRepository) FindEntriesAfter(ctx context.Context, recordID string, after time.Time, afterEntryID string, limit int) ([]domain.AuditLogEntry, error) {
	if m.FindEntriesAfterFn != nil {
		return m.FindEntriesAfterFn(ctx, recordID, after, afterEntryID, limit)
	}
	args := m.Called(ctx, recordID, after, afterEntryID, limit)
	var entries []domain.AuditLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLogEntry)
	}
	return entries, args.Error(1)
}
