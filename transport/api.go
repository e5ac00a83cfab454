package transport

import (
	"chat-room/contract"
	"chat-room/domain"
	"chat-room/errors"
	"chat-room/observability"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shirou/gopsutil/process"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// Status describes which collaborators the process was started with.
type Status struct {
	Store      string
	Completion bool
	Embedding  bool
}

// API serves the banner, health and the facts and search endpoints.
type API struct {
	log       *slog.Logger
	engine    contract.RoomEngine
	facts     contract.FactAdmin
	search    contract.MessageSearcher
	status    Status
	validate  *validator.Validate
	monitor   *observability.MonitoringManager
	startedAt time.Time
}

func NewAPI(log *slog.Logger, engine contract.RoomEngine, facts contract.FactAdmin, search contract.MessageSearcher, status Status) *API {
	return &API{
		log:       log,
		engine:    engine,
		facts:     facts,
		search:    search,
		status:    status,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		startedAt: time.Now(),
	}
}

// WithMonitor adds the room activity stats to /health.
func (a *API) WithMonitor(monitor *observability.MonitoringManager) *API {
	a.monitor = monitor
	return a
}

// Routes registers every endpoint, the websocket handler included.
func (a *API) Routes(mux *http.ServeMux, ws http.Handler) {
	mux.Handle("GET /ws", ws)
	mux.HandleFunc("GET /{$}", a.root)
	mux.HandleFunc("GET /health", a.health)
	mux.HandleFunc("GET /api/facts", a.listFacts)
	mux.HandleFunc("DELETE /api/facts/{id}", a.deleteFact)
	mux.HandleFunc("PATCH /api/facts/{id}", a.patchFact)
	mux.HandleFunc("GET /api/messages/search", a.searchMessages)
}

func (a *API) root(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "running",
		"message": "Chat room is live",
		"endpoints": map[string]string{
			"websocket": "ws://" + r.Host + "/ws",
			"health":    "/health",
			"facts":     "/api/facts",
			"search":    "/api/messages/search",
		},
	})
}

func (a *API) health(w http.ResponseWriter, _ *http.Request) {
	body := map[string]any{
		"status":       "healthy",
		"store":        a.status.Store,
		"completion":   lo.Ternary(a.status.Completion, "initialized", "not initialized"),
		"embedding":    lo.Ternary(a.status.Embedding, "initialized", "not initialized"),
		"active_users": a.engine.ActiveConnections(),
		"uptime":       time.Since(a.startedAt).Round(time.Second).String(),
	}
	if a.monitor != nil {
		body["stats"] = a.monitor.GetLatest()
	}
	if rss, err := residentMemory(); err == nil {
		body["memory_rss_bytes"] = rss
	} else {
		a.log.Debug("Unable to read process memory", "error", err)
	}
	a.writeJSON(w, http.StatusOK, body)
}

func residentMemory() (uint64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, err
	}
	info, err := p.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}

func (a *API) listFacts(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.URL.Query().Get("username"))
	if username == "" {
		a.writeJSON(w, http.StatusBadRequest, envelope{Error: "username is required"})
		return
	}
	facts, err := a.facts.GetActiveFacts(r.Context(), username)
	if err != nil {
		a.writeError(w, err)
		return
	}
	views := lo.Map(facts, func(f domain.Fact, _ int) factView { return toFactView(f) })
	if len(views) == 0 {
		a.writeJSON(w, http.StatusOK, envelope{OK: true, Data: []factView{}, Note: "no facts found"})
		return
	}
	a.writeJSON(w, http.StatusOK, envelope{OK: true, Data: views})
}

func (a *API) deleteFact(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := a.facts.DeleteFact(r.Context(), id); err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, envelope{OK: true, Result: map[string]string{"id": id}})
}

func (a *API) patchFact(w http.ResponseWriter, r *http.Request) {
	var patch domain.FactPatch
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		a.writeJSON(w, http.StatusBadRequest, envelope{Error: "invalid body: " + err.Error()})
		return
	}
	if err := a.validate.Struct(patch); err != nil {
		a.writeJSON(w, http.StatusBadRequest, envelope{Error: err.Error()})
		return
	}
	if patch.Empty() {
		a.writeJSON(w, http.StatusBadRequest, envelope{Error: errors.ErrInvalidPatch.Error()})
		return
	}

	fact, err := a.facts.UpdateFact(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, envelope{OK: true, Result: toFactView(fact)})
}

func (a *API) searchMessages(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		a.writeJSON(w, http.StatusBadRequest, envelope{Error: "q is required"})
		return
	}
	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			a.writeJSON(w, http.StatusBadRequest, envelope{Error: "limit must be a positive integer"})
			return
		}
		limit = min(parsed, maxSearchLimit)
	}

	records, err := a.search.SearchMessages(r.Context(), query, limit)
	if err != nil {
		a.writeError(w, err)
		return
	}
	views := lo.Map(records, func(m domain.MessageRecord, _ int) recordView { return toRecordView(m) })
	a.writeJSON(w, http.StatusOK, envelope{OK: true, Data: views})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errors.ErrFactNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errors.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	default:
		a.log.Error("Request failed", "error", err)
	}
	a.writeJSON(w, status, envelope{Error: err.Error()})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.log.Warn("Failed to write response", "error", err)
	}
}
