package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"maternal-care-backend/internal/delivery/http/middleware"
	"maternal-care-backend/internal/domain/careplan"
	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/internal/infrastructure/database"
	"maternal-care-backend/internal/repository"
	"maternal-care-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuditService(log *logrus.Logger) service.AuditService {
	return service.NewAuditService(log, repository.NewAuditLogRepository())
}

func fixedClock(day string) func() time.Time {
	t, err := time.Parse(careplan.DateLayout, day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.Add(9 * time.Hour) }
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(careplan.DateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func midwifeCtx(id uuid.UUID) context.Context {
	return middleware.WithIdentity(context.Background(), id, entity.RoleMidwife)
}

func mohCtx(id uuid.UUID) context.Context {
	return middleware.WithIdentity(context.Background(), id, entity.RoleMOH)
}

func seedMidwife(t *testing.T, db *gorm.DB) *entity.Midwife {
	t.Helper()
	nic := uuid.NewString()[:12]
	midwife := &entity.Midwife{
		Username:    nic,
		Password:    "hashed",
		FullName:    "Midwife " + nic,
		NIC:         nic,
		PhoneNumber: nic,
	}
	if err := db.Create(midwife).Error; err != nil {
		t.Fatalf("seed midwife: %v", err)
	}
	return midwife
}

func seedMother(t *testing.T, db *gorm.DB, midwifeID uuid.UUID, name string) *entity.Mother {
	t.Helper()
	mother := &entity.Mother{
		FullName:  name,
		Password:  "hashed",
		MidwifeID: midwifeID,
	}
	if err := db.Create(mother).Error; err != nil {
		t.Fatalf("seed mother: %v", err)
	}
	return mother
}

func seedAppointment(t *testing.T, db *gorm.DB, mother *entity.Mother, at time.Time, visitType entity.VisitType) *entity.Appointment {
	t.Helper()
	appointment := &entity.Appointment{
		MidwifeID: mother.MidwifeID,
		MotherID:  mother.ID,
		DateTime:  at,
		VisitType: visitType,
		Status:    entity.AppointmentStatusScheduled,
	}
	if err := db.Create(appointment).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return appointment
}

type fakeRiskStatsCache struct {
	mu          sync.Mutex
	stats       map[uuid.UUID]careplan.RiskStats
	invalidated []uuid.UUID
}

func newFakeRiskStatsCache() *fakeRiskStatsCache {
	return &fakeRiskStatsCache{stats: map[uuid.UUID]careplan.RiskStats{}}
}

func (c *fakeRiskStatsCache) Get(ctx context.Context, midwifeID uuid.UUID) (*careplan.RiskStats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats, ok := c.stats[midwifeID]
	if !ok {
		return nil, false
	}
	return &stats, true
}

func (c *fakeRiskStatsCache) Set(ctx context.Context, midwifeID uuid.UUID, stats careplan.RiskStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats[midwifeID] = stats
}

func (c *fakeRiskStatsCache) Invalidate(ctx context.Context, midwifeID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.stats, midwifeID)
	c.invalidated = append(c.invalidated, midwifeID)
}

type sentCredentials struct {
	to       string
	username string
	password string
}

type fakeNotifier struct {
	sent []sentCredentials
	err  error
}

func (n *fakeNotifier) SendMidwifeCredentials(ctx context.Context, to, fullName, username, password string) error {
	n.sent = append(n.sent, sentCredentials{to: to, username: username, password: password})
	return n.err
}
