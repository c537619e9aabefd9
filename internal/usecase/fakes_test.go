package usecase

import (
	"strings"
	"testing"
	"time"

	"patient-vitals-service/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGormDB opens a gorm handle on top of sqlmock so the usecase
// transaction plumbing (Begin/Commit/Rollback) can be asserted while the
// repositories themselves are in-memory fakes.
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func duplicateKeyError(constraintName string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraintName}
}

type fakeUserRepository struct {
	users []*entity.User
}

func (f *fakeUserRepository) Create(db *gorm.DB, user *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return duplicateKeyError("idx_users_email")
		}
		if existing.Username == user.Username {
			return duplicateKeyError("idx_users_username")
		}
	}
	user.ID = uuid.New()
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

type fakePatientRepository struct {
	records []*entity.Patient
	nextID  int64
}

func (f *fakePatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	for _, existing := range f.records {
		if existing.PatientID == patient.PatientID {
			return duplicateKeyError("idx_patients_patient_id")
		}
	}
	f.nextID++
	patient.ID = f.nextID
	patient.DateAdded = time.Now().UTC()
	stored := *patient
	f.records = append(f.records, &stored)
	return nil
}

func (f *fakePatientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	for _, record := range f.records {
		if record.ID == id {
			found := *record
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) FindByOwner(db *gorm.DB, ownerID uuid.UUID, search string) ([]entity.Patient, error) {
	var patients []entity.Patient
	for _, record := range f.records {
		if record.UserID != ownerID {
			continue
		}
		if search != "" && !strings.Contains(record.PatientID, search) && !strings.Contains(record.Name, search) {
			continue
		}
		patients = append(patients, *record)
	}
	return patients, nil
}

func (f *fakePatientRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	for i, record := range f.records {
		if record.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeAuditLogRepository struct {
	logs []*entity.AuditLog
}

func (f *fakeAuditLogRepository) Create(db *gorm.DB, auditLog *entity.AuditLog) error {
	stored := *auditLog
	f.logs = append(f.logs, &stored)
	return nil
}

func (f *fakeAuditLogRepository) FindByUserID(db *gorm.DB, userID uuid.UUID, limit int) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	for _, auditLog := range f.logs {
		if auditLog.UserID != nil && *auditLog.UserID == userID {
			logs = append(logs, *auditLog)
		}
		if limit > 0 && len(logs) == limit {
			break
		}
	}
	return logs, nil
}
