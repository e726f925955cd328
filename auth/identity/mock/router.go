package mock

import (
	"net/http"
)

// Handler routes HTTP requests to the appropriate mock identity endpoints.
type Handler struct {
	// Service is the mock identity service with endpoint handlers.
	Service *IdentityService
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/auth/me":
		h.Service.meCalls.Add(1)
		if h.Service.MeHandler != nil {
			h.Service.MeHandler(w, r)
		} else {
			h.Service.defaultMeHandler(w, r)
		}
	case "/api/auth/logout":
		h.Service.logoutCalls.Add(1)
		if h.Service.LogoutHandler != nil {
			h.Service.LogoutHandler(w, r)
		} else {
			h.Service.defaultLogoutHandler(w, r)
		}
	case "/api/auth/login":
		h.Service.loginCalls.Add(1)
		if h.Service.LoginHandler != nil {
			h.Service.LoginHandler(w, r)
		} else {
			h.Service.defaultLoginHandler(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}
