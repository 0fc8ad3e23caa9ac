package handler

import (
	"fmt"
	"net/http"
	"recipe-api/common"
)

// AppHandler is a handler that reports failures as *common.AppError instead
// of writing them itself.
type AppHandler func(http.ResponseWriter, *http.Request) *common.AppError

// ErrorHandlingMiddleware sends the returned AppError. A panic is turned into
// a generic 500 so its text never reaches the client.
func ErrorHandlingMiddleware(next AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				common.NewInternal("Internal server error", fmt.Errorf("panic: %v", rec)).Send(w)
			}
		}()

		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}
