package handler

import (
	"errors"
	"net/http"
	"recipe-api/common"
	"recipe-api/logger"
	"recipe-api/model"
	"recipe-api/service"
)

// Authenticator is the login use case.
type Authenticator interface {
	Login(username, password string) (string, error)
}

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Log in
// @Description  Checks a username/password pair and returns a bearer token valid for two hours.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Username and password"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError "Malformed request"
// @Failure      401  {object}  common.AppError "Invalid username or password"
// @Failure      500  {object}  common.AppError "Token could not be issued"
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return common.NewUnauthorized("Invalid username or password", nil)
		}
		return common.NewInternal("Could not complete login", err)
	}

	logger.Log.WithField("username", req.Username).Info("User logged in")
	common.WriteJSON(w, http.StatusOK, model.LoginResponse{Token: token})
	return nil
}
