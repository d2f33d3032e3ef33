package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	docsPath     = "/swagger"
	docsSpecPath = docsPath + "/spec"
)

const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>GoldVest Ledger Rules API</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({url: '` + docsSpecPath + `', dom_id: '#swagger-ui', deepLinking: true});
  </script>
</body>
</html>`

// DocsHandler serves the OpenAPI description and a Swagger UI page for it.
type DocsHandler struct {
	spec []byte
}

// NewDocsHandler creates a DocsHandler. An empty spec disables both routes.
func NewDocsHandler(spec []byte) *DocsHandler {
	return &DocsHandler{spec: spec}
}

func (h *DocsHandler) register(r gin.IRouter) {
	if len(h.spec) == 0 {
		return
	}
	r.GET(docsPath, h.UI)
	r.GET(docsSpecPath, h.Spec)
}

// Spec handles GET /swagger/spec.
func (h *DocsHandler) Spec(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", h.spec)
}

// UI handles GET /swagger.
func (h *DocsHandler) UI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
}
