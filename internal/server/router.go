package server

import (
	"html/template"
	"io/fs"
	"net/http"

	"painterflow/internal/auth"
	"painterflow/internal/config"
	"painterflow/internal/database"
	"painterflow/internal/handlers"
	"painterflow/internal/middleware"
	"painterflow/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "painterflow_session"

func NewRouter(cfg *config.Config, store *database.Store) *gin.Engine {
	r := gin.Default()

	tmpl := template.Must(template.New("").Funcs(funcMap()).ParseFS(web.FS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	cookies := cookie.NewStore([]byte(cfg.SessionSecret))
	cookies.Options(sessions.Options{Path: "/", MaxAge: 30 * 24 * 3600, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(sessionName, cookies))

	svc := auth.NewService(store, cfg.RequireEmailConfirmation)
	h := handlers.New(store, svc, cfg)

	r.Use(middleware.InjectSession(svc))

	// marketing
	r.GET("/", h.IndexPage)
	r.GET("/features", h.FeaturesPage)
	r.GET("/pricing", h.PricingPage)

	// auth
	guest := r.Group("/", middleware.RedirectSignedIn("/app"))
	guest.GET("/login", h.ShowLogin)
	guest.POST("/login", h.Login)
	guest.GET("/signup", h.ShowSignup)
	guest.POST("/signup", h.Signup)
	r.GET("/confirm", h.Confirm)
	r.POST("/logout", h.Logout)
	r.GET("/logout", h.Logout)

	app := r.Group("/app", middleware.RequireAuth())
	app.GET("", h.Dashboard)

	app.GET("/customers", h.ListCustomers)
	app.POST("/customers", h.CreateCustomer)
	app.POST("/customers/:id/delete", h.DeleteCustomer)

	app.GET("/jobs", h.ListJobs)
	app.POST("/jobs", h.CreateJob)
	app.GET("/jobs/:id", h.ShowJob)
	app.POST("/jobs/:id", h.UpdateJob)
	app.POST("/jobs/:id/delete", h.DeleteJob)

	app.GET("/estimates", h.ListEstimates)
	app.POST("/estimates", h.CreateEstimate)
	app.GET("/estimates/:id", h.ShowEstimate)
	app.POST("/estimates/:id/delete", h.DeleteEstimate)

	app.GET("/quotes", h.ListQuotes)
	app.POST("/quotes", h.CreateQuote)
	app.GET("/quotes/:id", h.ShowQuote)
	app.GET("/quotes/:id/pdf", h.QuotePDF)
	app.POST("/quotes/:id/status", h.UpdateQuoteStatus)
	app.POST("/quotes/:id/delete", h.DeleteQuote)

	app.GET("/calendar", h.Calendar)
	app.POST("/calendar/events", h.CreateEvent)
	app.GET("/calendar/events/:id", h.ShowEvent)
	app.POST("/calendar/events/:id/delete", h.DeleteEvent)

	r.GET("/health", h.Health)

	return r
}
