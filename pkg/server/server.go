// Package server serves the hand dealer as a web page and a JSON API.
package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mpsalisbury/brpts/pkg/table"
)

const SessionCookie = "brpts_session"

// One year, in seconds.
const sessionMaxAge = 365 * 24 * 60 * 60

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Bridge hand points</title>
<style>.hidden { display: none; }</style>
</head>
<body>
<div style="float: right">
<p><a href="https://github.com/ecashin/brpts">source code</a></p>
<p><a href="https://en.wikipedia.org/wiki/Hand_evaluation">info on hand evaluation</a></p>
</div>
<form method="post" action="/toggle"><button type="submit">{{.Button}}</button></form>
<p>{{.Hand}}</p>
<table{{if .Hidden}} class="hidden"{{end}}>
{{range .Rows}}<tr><td>{{.Label}}</td><td>{{.Points}}</td></tr>
{{end}}</table>
</body>
</html>
`))

// NewRouter wires the routes onto a gin engine with the default middleware.
func NewRouter(sessions *Sessions) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(indexTemplate)

	h := &handler{sessions: sessions}
	r.GET("/", h.index)
	r.POST("/toggle", h.toggle)

	api := r.Group("/api")
	api.GET("/hand", h.apiHand)
	api.POST("/toggle", h.apiToggle)
	return r
}

type handler struct {
	sessions *Sessions
}

// tableFor returns the caller's table, refreshing the session cookie.
func (h *handler) tableFor(c *gin.Context) *table.Table {
	id, _ := c.Cookie(SessionCookie)
	id, t := h.sessions.Get(id)
	c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
	return t
}

func (h *handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", h.tableFor(c).View())
}

func (h *handler) toggle(c *gin.Context) {
	h.tableFor(c).Toggle()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handler) apiHand(c *gin.Context) {
	c.JSON(http.StatusOK, h.tableFor(c).View())
}

func (h *handler) apiToggle(c *gin.Context) {
	c.JSON(http.StatusOK, h.tableFor(c).Toggle())
}
