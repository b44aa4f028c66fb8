// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/someonegg/teammatch/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) mergeTeams(w http.ResponseWriter, r *http.Request) {
	var req service.MergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, summ, err := s.svc.MergeTeams(&req)
	if err != nil {
		s.serviceError(w, r, "merge teams", err)
		return
	}

	s.logger.Info("teams merged",
		zap.String("request_id", chimiddleware.GetReqID(r.Context())),
		zap.Int("users", summ.Users),
		zap.Int("teams", summ.Teams),
		zap.Int("unbid_users", summ.UnbidUsers),
	)
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) swapTeamMembers(w http.ResponseWriter, r *http.Request) {
	var req service.SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, summ, err := s.svc.SwapTeamMembers(&req)
	if err != nil {
		s.serviceError(w, r, "swap team members", err)
		return
	}

	s.logger.Info("team members swapped",
		zap.String("request_id", chimiddleware.GetReqID(r.Context())),
		zap.Int("teams", summ.Teams),
		zap.Int("pawned_before", summ.PawnedBefore),
		zap.Int("pawned_after", summ.PawnedAfter),
	)
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, service.ErrInvalidRequest) {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error(op+" failed",
		zap.String("request_id", chimiddleware.GetReqID(r.Context())),
		zap.Error(err),
	)
	s.respondError(w, http.StatusInternalServerError, op+" failed")
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorResponse{Error: msg})
}
