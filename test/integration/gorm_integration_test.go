package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"cpd-events-be/internal/entity"
	"cpd-events-be/internal/repository/specification"
	"cpd-events-be/internal/repository/unitofwork"
	"cpd-events-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.TemplateRepository())
	assert.NotNil(t, uow.CertificateRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	ctx := context.Background()

	// Seed an owning organizer for the rows below
	userId := uuid.New()
	user := &entity.User{
		Id:       userId,
		Email:    "test-integration-" + uuid.New().String() + "@example.com",
		FullName: "Integration Test User",
		Role:     "organizer",
		Status:   "active",
	}
	err = uow.UserRepository().Create(ctx, user)
	assert.NoError(t, err)

	t.Run("Check Event Repository", func(t *testing.T) {
		count, err := uow.EventRepository().Count(ctx)
		assert.NoError(t, err)
		t.Logf("Event count: %d", count)
	})

	t.Run("Check Certificate Repository", func(t *testing.T) {
		count, err := uow.CertificateRepository().Count(ctx, specification.ByStatus{Status: entity.CertificateStatusIssued})
		assert.NoError(t, err)
		t.Logf("Issued certificate count: %d", count)
	})

	t.Run("Check Transactional Layout Save", func(t *testing.T) {
		// A template with placements, replaced inside one transaction the way
		// the editor's save operation does it.
		templateId := uuid.New()
		template := &entity.CertificateTemplate{
			Id:         templateId,
			Name:       "Integration Template " + uuid.New().String(),
			PageWidth:  842,
			PageHeight: 595,
			UserId:     userId,
		}
		err := uow.TemplateRepository().Create(ctx, template)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		err = uow.FieldPlacementRepository().DeleteAllByTemplateId(ctx, templateId)
		assert.NoError(t, err)

		placements := []*entity.FieldPlacement{
			{Id: uuid.New(), TemplateId: templateId, FieldKey: "attendee_name", X: 100, Y: 200, FontSize: 24},
			{Id: uuid.New(), TemplateId: templateId, FieldKey: "event_title", X: 100, Y: 260, FontSize: 16},
		}
		err = uow.FieldPlacementRepository().CreateBatch(ctx, placements)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		saved, err := uow.FieldPlacementRepository().FindAll(ctx, specification.ByTemplateID{TemplateID: templateId})
		assert.NoError(t, err)
		assert.Len(t, saved, 2)
		t.Log("Successfully replaced placements in transaction")
	})

	t.Run("Check Attendee Batch Insert", func(t *testing.T) {
		eventId := uuid.New()
		event := &entity.Event{
			Id:            eventId,
			Title:         "Integration Event " + uuid.New().String(),
			StartsAt:      time.Now().Add(-48 * time.Hour),
			EndsAt:        time.Now().Add(-24 * time.Hour),
			CpdCredits:    2.5,
			OrganizerName: "Integration Org",
			UserId:        userId,
		}
		err := uow.EventRepository().Create(ctx, event)
		assert.NoError(t, err)

		attendees := []*entity.Attendee{
			{Id: uuid.New(), EventId: eventId, FullName: "Alice Example", Email: "alice-" + uuid.New().String() + "@example.com"},
			{Id: uuid.New(), EventId: eventId, FullName: "Bob Example", Email: "bob-" + uuid.New().String() + "@example.com"},
		}
		err = uow.AttendeeRepository().CreateBatch(ctx, attendees)
		assert.NoError(t, err)

		count, err := uow.AttendeeRepository().Count(ctx, specification.ByEventID{EventID: eventId})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Check Soft Delete Excludes Event", func(t *testing.T) {
		eventId := uuid.New()
		event := &entity.Event{
			Id:            eventId,
			Title:         "Deleted Event " + uuid.New().String(),
			StartsAt:      time.Now(),
			EndsAt:        time.Now().Add(time.Hour),
			OrganizerName: "Integration Org",
			UserId:        userId,
		}
		err := uow.EventRepository().Create(ctx, event)
		assert.NoError(t, err)

		err = uow.EventRepository().Delete(ctx, eventId)
		assert.NoError(t, err)

		found, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: eventId})
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
