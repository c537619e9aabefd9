package http

import (
	"net/http"

	"patient-vitals-service/internal/delivery/http/handler"
	"patient-vitals-service/internal/delivery/http/middleware"
	"patient-vitals-service/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	homeHandler       *handler.HomeHandler
	authHandler       *handler.AuthHandler
	dashboardHandler  *handler.DashboardHandler
	sessionMiddleware *middleware.SessionMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	homeHandler *handler.HomeHandler,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		homeHandler:       homeHandler,
		authHandler:       authHandler,
		dashboardHandler:  dashboardHandler,
		sessionMiddleware: sessionMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check (no session)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes
	public := r.router.PathPrefix("/").Subrouter()
	public.Use(r.sessionMiddleware.Attach)
	public.HandleFunc("/", r.homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/signup", r.authHandler.SignupPage).Methods(http.MethodGet)
	public.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	public.HandleFunc("/login", r.authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodGet)
	public.HandleFunc("/set_language/{code}", r.homeHandler.SetLanguage).Methods(http.MethodGet)

	// Protected routes (require an authenticated session)
	protected := r.router.PathPrefix("/").Subrouter()
	protected.Use(r.sessionMiddleware.Attach)
	protected.Use(r.sessionMiddleware.RequireAuth)
	protected.HandleFunc("/dashboard", r.dashboardHandler.Dashboard).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard", r.dashboardHandler.Submit).Methods(http.MethodPost)
	protected.HandleFunc("/delete_patient/{id}", r.dashboardHandler.DeletePatient).Methods(http.MethodGet)

	// Add logging middleware
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "ok", nil)
}
