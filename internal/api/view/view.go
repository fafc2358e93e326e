// Package view 提供嵌入二进制的 HTML 模板
package view

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Mon Jan 2 2006, 3:04 PM")
	},
}

// Templates 解析全部页面，模板名即文件名
func Templates() (*template.Template, error) {
	return template.New("").Funcs(functions).ParseFS(templateFS, "templates/*.html")
}

// MustTemplates 解析失败时 panic，仅用于启动阶段
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
