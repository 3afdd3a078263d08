package community

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"systers-portal/internal/auth"
	"systers-portal/internal/logs"
	"systers-portal/internal/middlewares"
	"systers-portal/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:community%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&auth.User{}, &auth.SystersUser{}, &Community{}, &logs.SystemLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, username string, superuser bool) *auth.SystersUser {
	t.Helper()
	svc := &auth.AuthService{DB: db}
	user, err := svc.CreateUser(username, "", "foobar", superuser)
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	profile, err := svc.GetProfileByUserID(user.ID)
	if err != nil {
		t.Fatalf("seed profile %s: %v", username, err)
	}
	return profile
}

func seedCommunity(t *testing.T, db *gorm.DB, name, slug string, order int, admin *auth.SystersUser) *Community {
	t.Helper()
	c := &Community{Name: name, Slug: slug, Order: order, AdminID: admin.ID}
	if err := db.Omit("Admin").Create(c).Error; err != nil {
		t.Fatalf("seed community: %v", err)
	}
	return c
}

func setupCommunityRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares.AuthMiddleware(testSecret, session.StatelessStore{}))

	authService := &auth.AuthService{DB: db}
	cc := &CommunityController{
		CommunityService: &CommunityService{DB: db},
		Profiles:         authService,
		LS:               &logs.LogService{DB: db},
	}
	RegisterRoutes(r, cc, authService)
	return r
}

func sessionCookie(t *testing.T, profile *auth.SystersUser) *http.Cookie {
	t.Helper()
	tok, err := session.SignAccessToken(testSecret, profile.UserID, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return &http.Cookie{Name: session.AccessCookie, Value: tok}
}

func postJSON(r http.Handler, path string, body []byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func getReq(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}
