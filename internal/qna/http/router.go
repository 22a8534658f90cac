package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/scholarhub/backend/internal/qna/cache"
	"github.com/scholarhub/backend/internal/qna/service"
	"github.com/scholarhub/backend/internal/qna/store"
	"github.com/scholarhub/backend/pkg/httpx"
	"github.com/scholarhub/backend/pkg/jwtx"
	"github.com/scholarhub/backend/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	cache cache.Cache

	QuestionService  *service.QuestionService
	AnswerService    *service.AnswerService
	MessageService   *service.MessageService
	EntityService    *service.EntityService
	UserService      *service.UserService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	c cache.Cache,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		cache:        c,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerQuestions()
	r.registerAnswers()
	r.registerMessages()
	r.registerEntities()
	r.registerBootstrap()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerQuestions() {
	h := &QuestionsHandler{
		Questions: r.QuestionService,
		Users:     r.UserService,
	}

	// Public read path: the cache absorbs the load, limits stay high.
	r.Mux.Handle("GET /v1/questions",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Writes require a verified identity and are limited per user.
	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}
	r.Mux.Handle("POST /v1/questions", secured(h.HandleCreate))
	r.Mux.Handle("PUT /v1/questions", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/questions", secured(h.HandleDelete))
}

func (r *Router) registerAnswers() {
	h := &AnswersHandler{
		Answers: r.AnswerService,
		Users:   r.UserService,
	}

	r.Mux.Handle("GET /v1/answers",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}
	r.Mux.Handle("POST /v1/answers", secured(h.HandleCreate))
	r.Mux.Handle("PUT /v1/answers", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/answers", secured(h.HandleDelete))
}

func (r *Router) registerMessages() {
	h := &MessagesHandler{
		Messages: r.MessageService,
		Users:    r.UserService,
	}

	r.Mux.Handle("GET /v1/messages",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/messages/read",
		httpx.Chain(http.HandlerFunc(h.HandleMarkRead),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerEntities() {
	h := &EntitiesHandler{Entities: r.EntityService}

	// Public proxy onto a shared upstream: keep limits tighter than the
	// local read endpoints.
	r.Mux.Handle("POST /v1/entities/{type}/search",
		httpx.Chain(http.HandlerFunc(h.HandleSearch),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/entities/{type}/detail",
		httpx.Chain(http.HandlerFunc(h.HandleDetail),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	// One-time setup endpoint, very strict limit.
	h := &BootstrapHandler{Bootstrap: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.cache),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
