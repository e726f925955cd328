package mock

import "net/http/httptest"

// HTTPTestIdentityService runs the mock identity service on an httptest server
type HTTPTestIdentityService struct {
	*IdentityService
	Server *httptest.Server
	URL    string
}

// NewHTTPTestIdentityService starts mock identity service
func NewHTTPTestIdentityService(opts ...Option) (*HTTPTestIdentityService, error) {
	service, err := NewIdentityService(opts...)
	if err != nil {
		return nil, err
	}
	server := &HTTPTestIdentityService{
		IdentityService: service,
	}
	server.Server = httptest.NewServer(service.Handler())
	service.Issuer = server.Server.URL
	server.URL = server.Server.URL
	return server, nil
}

func (s *HTTPTestIdentityService) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.Server = nil
}
