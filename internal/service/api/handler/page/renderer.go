package page

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer 실행 파일에 내장된 HTML 템플릿을 렌더링하는 echo.Renderer 구현체입니다.
type Renderer struct {
	templates *template.Template
}

// NewRenderer 내장된 모든 템플릿을 파싱하여 Renderer를 생성합니다.
// 템플릿은 빌드 시점에 고정되므로 파싱 실패는 프로그래밍 오류로 간주하여 패닉을 발생시킵니다.
func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render echo.Renderer 인터페이스를 구현합니다.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
