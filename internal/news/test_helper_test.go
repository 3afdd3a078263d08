package news

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"systers-portal/internal/auth"
	"systers-portal/internal/community"
	"systers-portal/internal/logs"
	"systers-portal/internal/middlewares"
	"systers-portal/internal/role"
	"systers-portal/internal/session"
	"systers-portal/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:news%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&auth.User{}, &auth.SystersUser{}, &community.Community{},
		&role.CommunityRole{}, &News{}, &logs.SystemLog{},
	); err != nil {
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

func seedCommunity(t *testing.T, db *gorm.DB, name, slug string, admin *auth.SystersUser) *community.Community {
	t.Helper()
	c := &community.Community{Name: name, Slug: slug, Order: 1, AdminID: admin.ID}
	if err := db.Omit("Admin").Create(c).Error; err != nil {
		t.Fatalf("seed community: %v", err)
	}
	return c
}

func seedNews(t *testing.T, db *gorm.DB, comm *community.Community, author *auth.SystersUser, slug, title, content string) *News {
	t.Helper()
	n := &News{Slug: slug, Title: title, Content: content, CommunityID: comm.ID, AuthorID: author.ID}
	if err := (&NewsService{DB: db}).Create(n); err != nil {
		t.Fatalf("seed news: %v", err)
	}
	return n
}

// fixture mirrors the usual setup: user "foo" administers community "Foo".
type fixture struct {
	db     *gorm.DB
	router *gin.Engine
	admin  *auth.SystersUser
	comm   *community.Community
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	admin := seedProfile(t, db, "foo", false)
	comm := seedCommunity(t, db, "Foo", "foo", admin)
	return &fixture{db: db, router: setupNewsRouter(db), admin: admin, comm: comm}
}

func setupNewsRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	r.Use(middlewares.AuthMiddleware(testSecret, session.StatelessStore{}))

	nc := &NewsController{
		NewsService: &NewsService{DB: db},
		Communities: &community.CommunityService{DB: db},
		Profiles:    &auth.AuthService{DB: db},
		Roles:       &role.RoleService{DB: db},
		LS:          &logs.LogService{DB: db},
	}
	RegisterRoutes(r, nc)
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

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, data url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func countNews(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&News{}).Count(&n).Error; err != nil {
		t.Fatalf("count news: %v", err)
	}
	return n
}
