package authsession

import (
	"fmt"
	"net/http"

	"github.com/viant/authsession/auth/identity/mock"
)

// ServerOptions defines options for a local stand-in identity service.
type ServerOptions struct {
	Port     int    `yaml:"port" json:"port" short:"p" long:"port" description:"listen port"`
	Email    string `yaml:"email" json:"email" short:"e" long:"email" description:"account email"`
	Password string `yaml:"password" json:"password" short:"P" long:"password" description:"account password"`
	Name     string `yaml:"name" json:"name" short:"n" long:"name" description:"account name"`
}

// Init sets defaults
func (o *ServerOptions) Init() {
	if o.Port == 0 {
		o.Port = 8000
	}
	if o.Email == "" {
		o.Email = "a@example.com"
	}
	if o.Password == "" {
		o.Password = "secret"
	}
	if o.Name == "" {
		o.Name = "A"
	}
}

// NewServer creates an HTTP server exposing the mock identity service endpoints
func NewServer(options *ServerOptions) (*http.Server, error) {
	options.Init()
	service, err := mock.NewIdentityService(mock.WithAccount(&mock.Account{
		ID:       1,
		Name:     options.Name,
		Email:    options.Email,
		Password: options.Password,
	}))
	if err != nil {
		return nil, err
	}
	addr := fmt.Sprintf(":%d", options.Port)
	service.Issuer = "http://localhost" + addr
	return &http.Server{Addr: addr, Handler: service.Handler()}, nil
}
