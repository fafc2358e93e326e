package view

import (
	"bytes"
	"testing"
	"time"

	"Blogly/internal/api/dto"
	"Blogly/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_AllPagesDefined(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	pages := []string{
		"homepage.html", "404.html", "error.html",
		"users_list.html", "new_user.html", "edit_user.html", "user_detail.html",
		"new_post.html", "edit_post.html", "post_detail.html",
		"tags_list.html", "new_tag.html", "edit_tag.html", "tag_detail.html",
		"header", "footer", "post_items",
	}
	for _, name := range pages {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestTemplates_EditPostChecksCurrentTags(t *testing.T) {
	tmpl := MustTemplates()

	user := &model.User{ID: 1, FirstName: "Alan", LastName: "Alda"}
	news := &model.Tag{ID: 2, Name: "news"}
	sports := &model.Tag{ID: 3, Name: "sports"}
	detail := &dto.PostDetailDTO{
		Post: &model.Post{ID: 7, Title: "Hello", Content: "<b>body</b>", UserID: 1, User: user, CreatedAt: time.Now()},
		Tags: []*model.Tag{news},
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "edit_post.html", map[string]any{
		"Title":  "Edit Post",
		"Detail": detail,
		"Tags":   []*model.Tag{news, sports},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `action="/posts/7/edit"`)
	assert.Contains(t, out, `value="2" checked`)
	assert.NotContains(t, out, `value="3" checked`)
	assert.Contains(t, out, "&lt;b&gt;body&lt;/b&gt;")
}

func TestFormatDate(t *testing.T) {
	format := functions["formatDate"].(func(time.Time) string)

	assert.Equal(t, "", format(time.Time{}))
	assert.Equal(t, "Tue Jan 2 2024, 3:04 PM", format(time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC)))
}
