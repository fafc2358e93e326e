package api_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"Blogly/internal/model"
	"Blogly/internal/pkg/consts"
	"Blogly/internal/pkg/database/dbtest"
	"Blogly/internal/wire"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	router http.Handler
	db     *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	db := dbtest.New(t)
	app, err := wire.BuildApplication(db)
	require.NoError(t, err)
	return &testApp{router: app.Router, db: db}
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (a *testApp) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) seedUser(t *testing.T, first, last string) *model.User {
	u := &model.User{FirstName: first, LastName: last, ImageURL: consts.DefaultImageURL}
	require.NoError(t, a.db.Create(u).Error)
	return u
}

func (a *testApp) seedPost(t *testing.T, userID uint64, title string) *model.Post {
	p := &model.Post{Title: title, Content: title + " body", UserID: userID}
	require.NoError(t, a.db.Omit("User").Create(p).Error)
	return p
}

func (a *testApp) seedTag(t *testing.T, name string) *model.Tag {
	tag := &model.Tag{Name: name}
	require.NoError(t, a.db.Create(tag).Error)
	return tag
}

func (a *testApp) tagIDsOf(t *testing.T, postID uint64) []uint64 {
	ids := make([]uint64, 0)
	require.NoError(t, a.db.Model(&model.PostTag{}).Where("post_id = ?", postID).Order("tag_id").Pluck("tag_id", &ids).Error)
	return ids
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, location, w.Header().Get("Location"))
}

func TestHomepage(t *testing.T) {
	a := newTestApp(t)
	u := a.seedUser(t, "Alan", "Alda")
	a.seedPost(t, u.ID, "First Post")

	w := a.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "First Post")
	assert.Contains(t, w.Body.String(), "Alan Alda")
}

func TestUserLifecycle(t *testing.T) {
	a := newTestApp(t)

	w := a.get("/users/new")
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.post("/users/new", url.Values{"first_name": {"Alan"}, "last_name": {"Alda"}})
	assertRedirect(t, w, "/users")

	var u model.User
	require.NoError(t, a.db.First(&u).Error)
	assert.Equal(t, consts.DefaultImageURL, u.ImageURL)

	w = a.get("/users")
	assert.Contains(t, w.Body.String(), "Alan Alda")

	w = a.get("/users/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alan Alda")

	w = a.get("/users/1/edit")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Alan"`)

	w = a.post("/users/1/edit", url.Values{
		"first_name": {"Joel"},
		"last_name":  {"Burton"},
		"image_url":  {"https://example.com/joel.png"},
	})
	assertRedirect(t, w, "/users")
	require.NoError(t, a.db.First(&u, 1).Error)
	assert.Equal(t, "Joel", u.FirstName)
	assert.Equal(t, "https://example.com/joel.png", u.ImageURL)

	w = a.post("/users/1/delete", nil)
	assertRedirect(t, w, "/users")
	assert.Equal(t, http.StatusNotFound, a.get("/users/1").Code)
}

func TestCreateUser_MissingFieldIsClientError(t *testing.T) {
	a := newTestApp(t)

	w := a.post("/users/new", url.Values{"first_name": {"Alan"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, a.db.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNotFoundPages(t *testing.T) {
	a := newTestApp(t)

	paths := []string{
		"/users/99", "/users/99/edit", "/users/99/posts/new",
		"/posts/99", "/posts/99/edit",
		"/tags/99", "/tags/99/edit",
		"/users/abc", "/no/such/page",
	}
	for _, path := range paths {
		w := a.get(path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "404 Not Found", path)
	}

	for _, path := range []string{"/users/99/delete", "/posts/99/delete", "/tags/99/delete"} {
		assert.Equal(t, http.StatusNotFound, a.post(path, nil).Code, path)
	}
	assert.Equal(t, http.StatusNotFound, a.post("/users/99/posts/new", url.Values{"title": {"t"}, "content": {"c"}}).Code)
}

func TestDeleteRequiresPost(t *testing.T) {
	a := newTestApp(t)
	u := a.seedUser(t, "Alan", "Alda")

	w := a.get("/users/1/delete")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var count int64
	require.NoError(t, a.db.Model(&model.User{}).Where("id = ?", u.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPostLifecycle(t *testing.T) {
	a := newTestApp(t)
	u := a.seedUser(t, "Alan", "Alda")
	a.seedTag(t, "one")
	t2 := a.seedTag(t, "two")
	t3 := a.seedTag(t, "three")
	t4 := a.seedTag(t, "four")

	w := a.get("/users/1/posts/new")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "four")

	w = a.post("/users/1/posts/new", url.Values{
		"title":   {"Hello"},
		"content": {"World"},
		"tags":    {"2", "3"},
	})
	assertRedirect(t, w, "/users/1")

	var p model.Post
	require.NoError(t, a.db.First(&p).Error)
	assert.Equal(t, u.ID, p.UserID)
	assert.Equal(t, []uint64{t2.ID, t3.ID}, a.tagIDsOf(t, p.ID))

	w = a.get("/posts/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello")
	assert.Contains(t, w.Body.String(), "three")

	w = a.get("/posts/1/edit")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="2" checked`)

	w = a.post("/posts/1/edit", url.Values{
		"title":   {"Hello again"},
		"content": {"World"},
		"tags":    {"4"},
	})
	assertRedirect(t, w, "/posts/1")
	assert.Equal(t, []uint64{t4.ID}, a.tagIDsOf(t, p.ID))

	w = a.post("/posts/1/delete", nil)
	assertRedirect(t, w, "/")
	assert.Equal(t, http.StatusNotFound, a.get("/posts/1").Code)
	assert.Equal(t, http.StatusOK, a.get("/tags/4").Code)
}

func TestCreatePost_BadInput(t *testing.T) {
	a := newTestApp(t)
	a.seedUser(t, "Alan", "Alda")

	w := a.post("/users/1/posts/new", url.Values{"title": {"Hello"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.post("/users/1/posts/new", url.Values{"title": {"Hello"}, "content": {"x"}, "tags": {"abc"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUser_CascadesPosts(t *testing.T) {
	a := newTestApp(t)
	owner := a.seedUser(t, "Alan", "Alda")
	other := a.seedUser(t, "Jane", "Smith")
	a.seedPost(t, owner.ID, "one")
	a.seedPost(t, owner.ID, "two")
	a.seedPost(t, other.ID, "three")

	w := a.post("/users/1/delete", nil)
	assertRedirect(t, w, "/users")

	var count int64
	require.NoError(t, a.db.Model(&model.Post{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, a.db.Model(&model.Post{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTagLifecycle(t *testing.T) {
	a := newTestApp(t)
	u := a.seedUser(t, "Alan", "Alda")
	old := a.seedTag(t, "old")
	posts := make([]*model.Post, 0, 7)
	for _, title := range []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"} {
		posts = append(posts, a.seedPost(t, u.ID, title))
	}
	p5, p6, p7 := posts[4], posts[5], posts[6]
	require.NoError(t, a.db.Create(&model.PostTag{PostID: p5.ID, TagID: old.ID}).Error)

	w := a.get("/tags/new")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "p7")

	w = a.post("/tags/new", url.Values{"name": {"news"}, "posts": {"5", "7"}})
	assertRedirect(t, w, "/tags")

	var news model.Tag
	require.NoError(t, a.db.Where("name = ?", "news").First(&news).Error)
	assert.Equal(t, []uint64{old.ID, news.ID}, a.tagIDsOf(t, p5.ID))
	assert.Equal(t, []uint64{news.ID}, a.tagIDsOf(t, p7.ID))
	assert.Empty(t, a.tagIDsOf(t, p6.ID))

	w = a.get("/tags")
	assert.Contains(t, w.Body.String(), "news")

	w = a.get("/tags/2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "p5")

	w = a.post("/tags/2/edit", url.Values{"name": {"breaking"}, "posts": {"6"}})
	assertRedirect(t, w, "/tags")
	assert.Equal(t, []uint64{old.ID}, a.tagIDsOf(t, p5.ID))
	assert.Equal(t, []uint64{news.ID}, a.tagIDsOf(t, p6.ID))
	assert.Empty(t, a.tagIDsOf(t, p7.ID))

	w = a.post("/tags/2/delete", nil)
	assertRedirect(t, w, "/tags")
	assert.Empty(t, a.tagIDsOf(t, p6.ID))
	assert.Equal(t, http.StatusOK, a.get("/posts/6").Code)
}

func TestCreateTag_WithoutPosts(t *testing.T) {
	a := newTestApp(t)

	w := a.post("/tags/new", url.Values{"name": {"news"}})
	assertRedirect(t, w, "/tags")
}

func TestCreateTag_DuplicateName(t *testing.T) {
	a := newTestApp(t)
	a.seedTag(t, "news")

	w := a.post("/tags/new", url.Values{"name": {"news"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, a.db.Model(&model.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTraceHeader(t *testing.T) {
	a := newTestApp(t)

	w := a.get("/")
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}
