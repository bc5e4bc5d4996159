package endpoint

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariebrainware/tiny-erm/config"
	"github.com/ariebrainware/tiny-erm/middleware"
	"github.com/ariebrainware/tiny-erm/model"
	"github.com/ariebrainware/tiny-erm/registration"
	"github.com/ariebrainware/tiny-erm/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// endpointTestModels defines the models migrated for endpoint tests
var endpointTestModels = []interface{}{
	&model.Hospital{},
	&model.Patient{},
}

// setupEndpointTestDB opens the APPENV=test database with the standard models
// migrated and two hospitals seeded.
func setupEndpointTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.ConnectMySQL()
	if err != nil {
		t.Fatalf("failed to connect test DB: %v", err)
	}
	if err := db.AutoMigrate(endpointTestModels...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	hospitals := []model.Hospital{
		{ID: 1, Name: "서울 정형외과", NursingInstitutionNumber: "11100001", DirectorName: "김원장"},
		{ID: 2, Name: "부산 내과", NursingInstitutionNumber: "21100002", DirectorName: "박원장"},
	}
	if err := db.Create(&hospitals).Error; err != nil {
		t.Fatalf("seed hospitals: %v", err)
	}

	t.Cleanup(func() {
		for _, m := range endpointTestModels {
			_ = db.Migrator().DropTable(m)
		}
	})
	return db
}

// setupEndpointTest returns a Gin engine with a registrar backed by the test
// database. The allocator's clock is pinned to 2022.
func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupEndpointTestDB(t)
	patients := repository.NewPatientRepository(db)
	allocator := registration.NewAllocator(patients, registration.AllocatorConfig{
		Now: func() time.Time { return time.Date(2022, time.March, 1, 9, 0, 0, 0, time.UTC) },
	})
	logger := zerolog.Nop()
	reg := registration.NewRegistrar(repository.NewHospitalRepository(db), patients, allocator, registration.RegistrarConfig{
		Logger: &logger,
	})

	r := gin.New()
	r.Use(middleware.RegistrarMiddleware(reg))
	return r, db
}

// newTestRouter returns a new Gin engine configured for tests.
// Use this for tests that don't need a registrar injected.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func seedPatient(t *testing.T, db *gorm.DB, p model.Patient) model.Patient {
	t.Helper()
	require.NoError(t, db.Create(&p).Error)
	return p
}

// assertStatus asserts that the response HTTP status code matches the expected value
func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, w.Code, w.Body.String())
}

// assertSuccessResponse asserts that the response indicates success with HTTP 200
func assertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, response map[string]interface{}) {
	t.Helper()
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	if response == nil {
		return
	}
	if success, ok := response["success"].(bool); ok {
		assert.True(t, success)
	}
}

// dataOf returns the "data" object of an envelope.
func dataOf(t *testing.T, response map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok, "response data is not an object: %v", response)
	return data
}
