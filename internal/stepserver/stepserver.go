// Package stepserver exposes the evolution.Driver over a WebSocket
// connection: one JSON-encoded StepResult message per generation, so a
// remote client can render solver progress live instead of waiting on a
// single blocking Run() call.
package stepserver

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/craftsim/craftsolve/evolution"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server serves the solver over HTTP/WebSocket routes registered on a
// gorilla/mux router, building a fresh driver for each /solve connection
// and logging connection lifecycle via zerolog.
type Server struct {
	Router *mux.Router
	Logger zerolog.Logger
}

// New builds a Server with its routes registered.
func New(logger zerolog.Logger) *Server {
	s := &Server{
		Router: mux.NewRouter(),
		Logger: logger,
	}
	s.Router.HandleFunc("/solve", s.handleSolve)
	s.Router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// driverFactory builds a driver per connection; assigned by the caller
// (cmd/craftsolve-serve) once a Synth has been decoded from the request.
type driverFactory func(r *http.Request) (*evolution.Driver, error)

// DriverFactory is set once at startup to how a connection's Synth is
// resolved into a Driver. It receives only the WebSocket upgrade request
// and runs before any message is exchanged; cmd/craftsolve-serve decodes
// that request's body via internal/synthio.
var DriverFactory driverFactory

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	connID := uuid.New().String()
	logger := s.Logger.With().Str("conn_id", connID).Logger()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	if DriverFactory == nil {
		logger.Error().Msg("no driver factory configured")
		return
	}

	driver, err := DriverFactory(r)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to build driver from request")
		conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	logger.Info().Msg("starting solve session")
	for {
		result := driver.Step()
		payload := stepPayload{
			Kind:        result.Kind.String(),
			Generation:  result.Stats.Generation,
			BestFitness: result.Stats.BestFitness,
			AvgFitness:  result.Stats.AvgFitness,
			Diversity:   result.Stats.Diversity,
		}
		if result.Err != nil {
			payload.Error = result.Err.Error()
		}

		encoded, err := json.Marshal(payload)
		if err != nil {
			logger.Error().Err(err).Msg("marshal step payload")
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, encoded); err != nil {
			logger.Info().Err(err).Msg("client disconnected")
			return
		}

		if result.Kind != evolution.StepProgress {
			logger.Info().Str("outcome", payload.Kind).Msg("solve session complete")
			return
		}
	}
}

type stepPayload struct {
	Kind        string  `json:"kind"`
	Generation  int     `json:"generation"`
	BestFitness float64 `json:"best_fitness"`
	AvgFitness  float64 `json:"avg_fitness"`
	Diversity   float64 `json:"diversity"`
	Error       string  `json:"error,omitempty"`
}
