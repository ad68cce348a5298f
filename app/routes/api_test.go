package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/isipark/siteapi/app/models"
	"github.com/isipark/siteapi/pkg/auth"
	"github.com/isipark/siteapi/pkg/pagination"
)

type apiEnvelope struct {
	Success    bool             `json:"success"`
	Data       json.RawMessage  `json:"data"`
	Error      string           `json:"error"`
	Pagination *pagination.Page `json:"pagination"`
}

func setupAPI(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A :memory: database exists per connection; pin the pool to one so
	// every query sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.AdminUser{},
		&models.Category{},
		&models.Product{},
		&models.Service{},
		&models.BlogPost{},
		&models.FAQ{},
		&models.Testimonial{},
		&models.CompanyInfo{},
		&models.Reference{},
		&models.ContactMessage{},
	))

	return Build(db).Handler()
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "admin@example.com")
	require.NoError(t, err)
	return token
}

func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env apiEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	}
	return rec, env
}

func createService(t *testing.T, h http.Handler, token string, body map[string]interface{}) models.Service {
	t.Helper()
	rec, env := do(t, h, "POST", "/api/services", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var svc models.Service
	require.NoError(t, json.Unmarshal(env.Data, &svc))
	return svc
}

func TestFAQCreate(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	rec, env := do(t, h, "POST", "/api/faq", token, map[string]interface{}{
		"question": "Q", "answer": "A",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var faq models.FAQ
	require.NoError(t, json.Unmarshal(env.Data, &faq))
	assert.NotZero(t, faq.ID)
	assert.True(t, faq.IsActive)
}

func TestFAQCreateMissingAnswer(t *testing.T) {
	h := setupAPI(t)

	rec, env := do(t, h, "POST", "/api/faq", adminToken(t), map[string]interface{}{
		"question": "Q",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Question and answer are required", env.Error)
	assert.False(t, env.Success)
}

func TestTestimonialDeleteNotFound(t *testing.T) {
	h := setupAPI(t)

	rec, env := do(t, h, "DELETE", "/api/testimonials/9999", adminToken(t), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Testimonial not found", env.Error)
}

func TestMutationsRequireAdminToken(t *testing.T) {
	h := setupAPI(t)

	rec, _ := do(t, h, "POST", "/api/faq", "", map[string]interface{}{
		"question": "Q", "answer": "A",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, h, "DELETE", "/api/services/1", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServicesFeaturedSearchPagination(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	// 7 featured services matching "kombi"
	for i := 0; i < 7; i++ {
		createService(t, h, token, map[string]interface{}{
			"title":       fmt.Sprintf("Kombi Servisi %d", i),
			"description": "Kombi bakım ve onarım",
			"is_featured": true,
		})
	}
	// matching but not featured
	createService(t, h, token, map[string]interface{}{
		"title": "Kombi Parçaları", "description": "Yedek parça", "is_featured": false,
	})
	// featured but not matching
	createService(t, h, token, map[string]interface{}{
		"title": "Klima Montajı", "description": "Split klima", "is_featured": true,
	})

	rec, env := do(t, h, "GET", "/api/services?featured=true&search=kombi&limit=5&offset=0", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []models.Service
	require.NoError(t, json.Unmarshal(env.Data, &rows))

	assert.Len(t, rows, 5)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(7), env.Pagination.Total)
	assert.True(t, env.Pagination.HasMore)

	for _, svc := range rows {
		assert.True(t, svc.IsFeatured)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	_, _ = do(t, h, "POST", "/api/faq", token, map[string]interface{}{
		"question": "Garanti suresi nedir?", "answer": "2 yil",
	})
	_, _ = do(t, h, "POST", "/api/faq", token, map[string]interface{}{
		"question": "Odeme nasil yapilir?", "answer": "Nakit veya kart",
	})

	rec, env := do(t, h, "GET", "/api/faq?search=GARANTI", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []models.FAQ
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Question, "Garanti")
}

func TestListOrdering(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	createService(t, h, token, map[string]interface{}{
		"title": "Ucuncu", "description": "d", "sort_order": 3,
	})
	createService(t, h, token, map[string]interface{}{
		"title": "Birinci", "description": "d", "sort_order": 1,
	})
	createService(t, h, token, map[string]interface{}{
		"title": "Ikinci", "description": "d", "sort_order": 2,
	})

	rec, env := do(t, h, "GET", "/api/services", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []models.Service
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 3)

	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].SortOrder, rows[i].SortOrder)
	}
}

func TestPaginationWindow(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	for i := 0; i < 5; i++ {
		_, _ = do(t, h, "POST", "/api/faq", token, map[string]interface{}{
			"question": fmt.Sprintf("Soru %d", i), "answer": "Cevap",
		})
	}

	rec, env := do(t, h, "GET", "/api/faq?limit=2&offset=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []models.FAQ
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Len(t, rows, 2)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(5), env.Pagination.Total)
	assert.True(t, env.Pagination.HasMore)

	rec, env = do(t, h, "GET", "/api/faq?limit=2&offset=4", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Len(t, rows, 1)
	assert.False(t, env.Pagination.HasMore)
}

func TestPartialUpdatePreservesOmittedFields(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	svc := createService(t, h, token, map[string]interface{}{
		"title":       "Kombi Montajı",
		"description": "Montaj hizmeti",
		"price_range": "1500-3000 TL",
		"duration":    "2-4 saat",
	})

	rec, env := do(t, h, "PUT", fmt.Sprintf("/api/services/%d", svc.ID), token, map[string]interface{}{
		"duration": "1 saat",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Service
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "1 saat", updated.Duration)
	assert.Equal(t, "1500-3000 TL", updated.PriceRange)
	assert.Equal(t, "Kombi Montajı", updated.Title)
}

func TestSoftDeleteHidesFromListAndGet(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	svc := createService(t, h, token, map[string]interface{}{
		"title": "Silinecek", "description": "d",
	})

	rec, _ := do(t, h, "DELETE", fmt.Sprintf("/api/services/%d", svc.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, h, "GET", "/api/services", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Service
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Empty(t, rows)

	rec, env = do(t, h, "GET", fmt.Sprintf("/api/services/%d", svc.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Service not found", env.Error)
}

func TestServiceSlugFoldsTurkishCharacters(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	svc := createService(t, h, token, map[string]interface{}{
		"title": "Kombi Bakımı", "description": "d",
	})
	assert.Equal(t, "kombi-bakimi", svc.Slug)

	// Same title again: slug must stay unique.
	dup := createService(t, h, token, map[string]interface{}{
		"title": "Kombi Bakımı", "description": "d",
	})
	assert.Equal(t, "kombi-bakimi-2", dup.Slug)
}

func TestTestimonialSubmissionNeedsApproval(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	rec, env := do(t, h, "POST", "/api/testimonials", "", map[string]interface{}{
		"name": "Ayşe", "comment": "Çok memnun kaldık", "rating": 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Testimonial
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.False(t, created.IsApproved)

	// Hidden from the public listing until approved.
	rec, env = do(t, h, "GET", "/api/testimonials", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Testimonial
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Empty(t, rows)

	rec, _ = do(t, h, "PUT", fmt.Sprintf("/api/testimonials/%d", created.ID), token, map[string]interface{}{
		"is_approved": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, "GET", "/api/testimonials", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Len(t, rows, 1)
}

func TestContactSubmission(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(map[string]interface{}{
		"name": "Mehmet", "email": "mehmet@example.com", "message": "Kombim arızalı",
		"urgency": "urgent",
	}))

	req := httptest.NewRequest("POST", "/api/contact", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("User-Agent", "test-browser/1.0")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	// Admin inbox shows the captured metadata.
	rec2, env := do(t, h, "GET", "/api/contact", token, nil)
	require.Equal(t, http.StatusOK, rec2.Code)

	var rows []models.ContactMessage
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "203.0.113.9", rows[0].SourceIP)
	assert.Equal(t, "test-browser/1.0", rows[0].UserAgent)
	assert.Equal(t, models.ContactStatusNew, rows[0].Status)
	assert.Equal(t, models.ContactUrgencyUrgent, rows[0].Urgency)
}

func TestContactRequiredFields(t *testing.T) {
	h := setupAPI(t)

	rec, env := do(t, h, "POST", "/api/contact", "", map[string]interface{}{
		"name": "Mehmet",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, email and message are required", env.Error)
}

func TestContactHardDelete(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	rec, env := do(t, h, "POST", "/api/contact", "", map[string]interface{}{
		"name": "Mehmet", "email": "m@example.com", "message": "Merhaba",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var msg models.ContactMessage
	require.NoError(t, json.Unmarshal(env.Data, &msg))

	rec, _ = do(t, h, "DELETE", fmt.Sprintf("/api/contact/%d", msg.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, "GET", fmt.Sprintf("/api/contact/%d", msg.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Contact message not found", env.Error)
}

func TestCompanySingletonUpsert(t *testing.T) {
	h := setupAPI(t)
	token := adminToken(t)

	rec, _ := do(t, h, "PUT", "/api/company", token, map[string]interface{}{
		"about": "Hakkımızda", "phone": "+90 212 000 00 00",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Second partial PUT must merge, not clear.
	rec, env := do(t, h, "PUT", "/api/company", token, map[string]interface{}{
		"email": "info@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var info models.CompanyInfo
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, "Hakkımızda", info.About)
	assert.Equal(t, "+90 212 000 00 00", info.Phone)
	assert.Equal(t, "info@example.com", info.Email)

	rec, env = do(t, h, "GET", "/api/company", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, "Hakkımızda", info.About)
}

func TestPreflightReturnsBare200(t *testing.T) {
	h := setupAPI(t)

	req := httptest.NewRequest("OPTIONS", "/api/products", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCategoryCreateAndList(t *testing.T) {
	h := setupAPI(t)

	rec, env := do(t, h, "POST", "/api/categories", adminToken(t), map[string]interface{}{
		"name": "Isı Pompası", "sort_order": 3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var cat models.Category
	require.NoError(t, json.Unmarshal(env.Data, &cat))
	assert.Equal(t, "isi-pompasi", cat.Slug)

	// Creation needs the admin token.
	rec, _ = do(t, h, "POST", "/api/categories", "", map[string]interface{}{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = do(t, h, "GET", "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []models.Category
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Isı Pompası", rows[0].Name)
}

func TestLoginIssuesToken(t *testing.T) {
	h := setupAPI(t)

	// No admin seeded: login must fail closed.
	rec, env := do(t, h, "POST", "/api/auth/login", "", map[string]interface{}{
		"email": "admin@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", env.Error)
}
