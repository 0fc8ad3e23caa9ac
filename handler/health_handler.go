package handler

import (
	"net/http"
	"recipe-api/common"
)

// HealthCheck godoc
// @Summary      Liveness probe
// @Description  Answers without touching the recipe store or the cache.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "API is healthy and running"})
}
