// Package httpapi is the HTTP ingest adapter (spec C10): it deserialises
// one request per endpoint into a world.Action, submits it to the
// simulation loop's inbound channel, and blocks until the loop replies.
// Grounded on the teacher's CLI-first request/reply shape, generalised to
// HTTP with github.com/gorilla/mux for routing (the dependency the pack's
// niceyeti-tabular/tabular/go.mod carries for the same purpose) in place of
// the teacher's own bare cobra commands.
package httpapi

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"blocksworld/internal/scenario"
	"blocksworld/internal/sim"
	"blocksworld/internal/world"
)

// Server wires gorilla/mux routes onto the simulation loop's inbound
// channel. It owns no world state itself.
type Server struct {
	addr      string
	loop      *sim.Loop
	scenarios *scenario.Registry
	log       zerolog.Logger
	http      *http.Server
}

// NewServer builds an HTTP front end for loop, listening on addr.
func NewServer(addr string, loop *sim.Loop, scenarios *scenario.Registry, logger zerolog.Logger) *Server {
	s := &Server{addr: addr, loop: loop, scenarios: scenarios, log: logger}
	s.http = &http.Server{Addr: addr, Handler: s.routes()}
	return s
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/start_simulation", s.handleStartSimulation).Methods(http.MethodPost)
	r.HandleFunc("/stop_simulation", s.handleStopSimulation).Methods(http.MethodPost)
	r.HandleFunc("/pick_up", s.handlePickUp).Methods(http.MethodPost)
	r.HandleFunc("/put_down", s.handlePutDown).Methods(http.MethodPost)
	r.HandleFunc("/stack", s.handleStack).Methods(http.MethodPost)
	r.HandleFunc("/unstack", s.handleUnstack).Methods(http.MethodPost)
	r.HandleFunc("/execute_plan", s.handlePlan(world.PlanExecute)).Methods(http.MethodPost)
	r.HandleFunc("/verify_plan", s.handlePlan(world.PlanVerify)).Methods(http.MethodPost)
	r.HandleFunc("/quit", s.handleQuit).Methods(http.MethodPost)
	r.HandleFunc("/scenarios", s.handleScenarios).Methods(http.MethodGet)
	r.HandleFunc("/scenarios/{name_or_id}", s.handleScenarioByID).Methods(http.MethodGet)
	r.HandleFunc("/get_status", s.handleGetStatus).Methods(http.MethodGet)
	r.HandleFunc("/get_rules", s.handleGetRules).Methods(http.MethodGet)
	return r
}

func pathParam(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

func newRunID() string {
	return uuid.New().String()
}

// ListenAndServe blocks serving HTTP until the simulation loop's Quit
// dispatch triggers shutdown, or the listener itself fails at bind time
// (spec §6 "non-zero exit code on transport failure at bind time").
func (s *Server) ListenAndServe() error {
	s.log.Info().Str("addr", s.addr).Msg("http server listening")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// shutdown gracefully stops the HTTP server after a Quit action has already
// replied to its caller, giving the in-flight response time to flush.
func (s *Server) shutdown() {
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.log.Error().Err(err).Msg("http server shutdown")
	}
	os.Exit(0)
}
