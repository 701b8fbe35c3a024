package repositories

import (
	"fmt"
	"testing"

	"internhub_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.CompanyProfile{},
		&models.Internship{},
		&models.Application{},
	))
	return db
}

type fixture struct {
	student    *models.StudentProfile
	company    *models.CompanyProfile
	internship *models.Internship
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	studentUser := &models.User{Email: uuid.NewString() + "@test.com", PasswordHash: "x", Role: models.UserRoleStudent}
	companyUser := &models.User{Email: uuid.NewString() + "@test.com", PasswordHash: "x", Role: models.UserRoleCompany}
	require.NoError(t, db.Create(studentUser).Error)
	require.NoError(t, db.Create(companyUser).Error)

	student := &models.StudentProfile{
		UserID: studentUser.ID, FirstName: "A", LastName: "B",
		University: "U", Major: "M", GraduationYear: 2026,
	}
	company := &models.CompanyProfile{
		UserID: companyUser.ID, CompanyName: "C", Industry: "I",
		Location: "L", CompanySize: models.CompanySizeSmall,
	}
	require.NoError(t, db.Create(student).Error)
	require.NoError(t, db.Create(company).Error)

	internship := &models.Internship{
		CompanyID: company.ID, Title: "T", Description: "D",
		Location: "L", Duration: "3 months", IsActive: true,
	}
	require.NoError(t, db.Create(internship).Error)

	return fixture{student: student, company: company, internship: internship}
}

func TestApplicationCreate_DuplicatePairFails(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewApplicationRepository()

	first := &models.Application{StudentID: f.student.ID, InternshipID: f.internship.ID, Status: models.ApplicationStatusPending}
	require.NoError(t, repo.Create(db, first))

	second := &models.Application{StudentID: f.student.ID, InternshipID: f.internship.ID, Status: models.ApplicationStatusPending}
	err := repo.Create(db, second)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

func TestUpdateStatusFromPending_Guard(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewApplicationRepository()

	application := &models.Application{StudentID: f.student.ID, InternshipID: f.internship.ID, Status: models.ApplicationStatusPending}
	require.NoError(t, repo.Create(db, application))

	require.NoError(t, repo.UpdateStatusFromPending(db, application.ID, models.ApplicationStatusAccepted))

	// The second decision hits a non-pending row.
	err := repo.UpdateStatusFromPending(db, application.ID, models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, ErrNotPending)

	got, err := repo.FindByID(db, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, got.Status)
}

func TestFindOwnedByCompany_ScopesToOwner(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	other := seedFixture(t, db)
	repo := NewApplicationRepository()

	application := &models.Application{StudentID: f.student.ID, InternshipID: f.internship.ID, Status: models.ApplicationStatusPending}
	require.NoError(t, repo.Create(db, application))

	got, err := repo.FindOwnedByCompany(db, application.ID, f.company.ID)
	require.NoError(t, err)
	assert.Equal(t, application.ID, got.ID)

	_, err = repo.FindOwnedByCompany(db, application.ID, other.company.ID)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestCountByCompany_StatusFilter(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewApplicationRepository()

	otherStudentUser := &models.User{Email: uuid.NewString() + "@test.com", PasswordHash: "x", Role: models.UserRoleStudent}
	require.NoError(t, db.Create(otherStudentUser).Error)
	otherStudent := &models.StudentProfile{
		UserID: otherStudentUser.ID, FirstName: "C", LastName: "D",
		University: "U", Major: "M", GraduationYear: 2027,
	}
	require.NoError(t, db.Create(otherStudent).Error)

	first := &models.Application{StudentID: f.student.ID, InternshipID: f.internship.ID, Status: models.ApplicationStatusPending}
	second := &models.Application{StudentID: otherStudent.ID, InternshipID: f.internship.ID, Status: models.ApplicationStatusPending}
	require.NoError(t, repo.Create(db, first))
	require.NoError(t, repo.Create(db, second))
	require.NoError(t, repo.UpdateStatusFromPending(db, first.ID, models.ApplicationStatusAccepted))

	total, err := repo.CountByCompany(db, f.company.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	pending := models.ApplicationStatusPending
	pendingCount, err := repo.CountByCompany(db, f.company.ID, &pending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pendingCount)

	accepted := models.ApplicationStatusAccepted
	acceptedCount, err := repo.CountByCompany(db, f.company.ID, &accepted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), acceptedCount)
}
