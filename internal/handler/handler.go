package handler

import (
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/command"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/config"
)

// Handler exposes the command interpreter over HTTP. Each authenticated
// subject gets its own interpreter session, so concurrent clients do not
// share login state.
type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	interpreter *command.Interpreter
	translator  ut.Translator

	mu       sync.Mutex
	sessions map[string]*command.Session

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, in *command.Interpreter) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		interpreter: in,
		translator:  trans,
		sessions:    make(map[string]*command.Session),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Post("/session", h.CreateSession)

	h.Mux.Group(func(r chi.Router) {
		r.Use(h.session)
		r.Post("/command", h.RunCommand)
	})
}

// sessionFor returns the interpreter session bound to the subject, creating
// it on first use.
func (h *Handler) sessionFor(subject string) *command.Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	sess, ok := h.sessions[subject]
	if !ok {
		sess = command.NewSession()
		h.sessions[subject] = sess
	}
	return sess
}
