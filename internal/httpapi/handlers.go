package httpapi

import (
	"encoding/json"
	"net/http"

	"blocksworld/internal/scenario"
	"blocksworld/internal/world"
)

// submit pushes action onto the loop's inbound channel and blocks until the
// loop's dispatcher replies, exactly the suspension point spec §5 describes
// for an HTTP handler.
func (s *Server) submit(action world.Action) world.Reply {
	s.loop.Inbound <- action
	return <-action.Reply()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeResult(w http.ResponseWriter, reply world.Reply) {
	if reply.Success {
		writeJSON(w, http.StatusOK, resultResponse{Result: reply.Message})
		return
	}
	writeJSON(w, http.StatusBadRequest, resultResponse{Result: reply.Message})
}

func (s *Server) handleStartSimulation(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req) // empty body ⇒ defaults
	}
	action := world.NewPreStartAction(req.ScenarioID, req.ConstraintSet, req.InitialStacks)
	writeResult(w, s.submit(action))
}

func (s *Server) handleStopSimulation(w http.ResponseWriter, _ *http.Request) {
	writeResult(w, s.submit(world.NewStopAction()))
}

func (s *Server) handlePickUp(w http.ResponseWriter, r *http.Request) {
	var req blockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Result: "malformed request body"})
		return
	}
	writeResult(w, s.submit(world.NewPickUpAction(firstRune(req.Block))))
}

func (s *Server) handlePutDown(w http.ResponseWriter, r *http.Request) {
	var req blockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Result: "malformed request body"})
		return
	}
	writeResult(w, s.submit(world.NewPutDownAction()))
}

func (s *Server) handleStack(w http.ResponseWriter, r *http.Request) {
	var req pairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Result: "malformed request body"})
		return
	}
	writeResult(w, s.submit(world.NewStackAction(firstRune(req.Block1), firstRune(req.Block2))))
}

func (s *Server) handleUnstack(w http.ResponseWriter, r *http.Request) {
	var req pairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resultResponse{Result: "malformed request body"})
		return
	}
	writeResult(w, s.submit(world.NewUnstackAction(firstRune(req.Block1), firstRune(req.Block2))))
}

func (s *Server) handlePlan(mode world.PlanMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req planRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, resultResponse{Result: "malformed request body"})
			return
		}

		steps := make([]world.Action, 0, len(req.Plan))
		for _, step := range req.Plan {
			action, ok := step.toAction()
			if !ok {
				writeJSON(w, http.StatusBadRequest, resultResponse{Result: "unknown plan step action " + step.Action})
				return
			}
			steps = append(steps, action)
		}

		runID := newRunID()
		action := world.NewPlanAction(runID, steps, mode)
		reply := s.submit(action)
		if reply.Success {
			writeJSON(w, http.StatusOK, resultResponse{Result: reply.Message})
			return
		}

		report, _ := reply.Payload.(*world.PlanReport)
		body := planFailureResponse{Result: reply.Message}
		if report != nil {
			body.Executed = toStepReports(report.Executed)
			if report.Offender != nil {
				offender := planStepReport{Index: report.Offender.Index, Reason: report.Offender.Reason}
				body.Offender = &offender
			}
			body.Skipped = toStepReports(report.Skipped)
		}
		writeJSON(w, http.StatusBadRequest, body)
	}
}

func (s *Server) handleQuit(w http.ResponseWriter, _ *http.Request) {
	reply := s.submit(world.NewQuitAction())
	writeJSON(w, http.StatusOK, resultResponse{Result: reply.Message})
	go s.shutdown()
}

func (s *Server) handleScenarios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Scenarios []*scenario.Scenario `json:"scenarios"`
	}{Scenarios: s.scenarios.List()})
}

func (s *Server) handleScenarioByID(w http.ResponseWriter, r *http.Request) {
	nameOrID := pathParam(r, "name_or_id")
	action := world.NewGetScenarioAction(nameOrID)
	reply := s.submit(action)
	if !reply.Success {
		writeJSON(w, http.StatusNotFound, resultResponse{Result: reply.Message})
		return
	}
	writeJSON(w, http.StatusOK, reply.Payload)
}

func (s *Server) handleGetStatus(w http.ResponseWriter, _ *http.Request) {
	reply := s.submit(world.NewGetStatusAction())
	if !reply.Success {
		writeJSON(w, http.StatusBadRequest, resultResponse{Result: reply.Message})
		return
	}
	writeJSON(w, http.StatusOK, reply.Payload)
}

func (s *Server) handleGetRules(w http.ResponseWriter, _ *http.Request) {
	reply := s.submit(world.NewGetRulesAction())
	rules, _ := reply.Payload.(string)
	writeJSON(w, http.StatusOK, struct {
		Rules string `json:"rules"`
	}{Rules: rules})
}
