package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/viant/authsession"
	"github.com/viant/authsession/auth/token"
	"github.com/viant/authsession/navigation"
	"github.com/viant/authsession/session"
)

// ErrNotAuthenticated is returned by verify when the session could not be confirmed
var ErrNotAuthenticated = errors.New("not authenticated")

// Runner executes commands
type Runner struct {
	ctx    context.Context
	writer io.Writer
	logger *slog.Logger
	// serve is replaced in tests
	serve func(server *http.Server) error
}

// Run parses args and executes selected command
func Run(args []string) error {
	return New(context.Background(), os.Stdout).Run(args)
}

// New creates a runner writing command output to writer
func New(ctx context.Context, writer io.Writer) *Runner {
	return &Runner{
		ctx:    ctx,
		writer: writer,
		serve:  func(server *http.Server) error { return server.ListenAndServe() },
	}
}

// WithLogger sets logger passed to sessions
func (r *Runner) WithLogger(logger *slog.Logger) *Runner {
	r.logger = logger
	return r
}

// Run parses args and executes selected command
func (r *Runner) Run(args []string) error {
	options := &Options{
		Login:     &LoginCommand{runner: r},
		Establish: &EstablishCommand{runner: r},
		Verify:    &VerifyCommand{runner: r},
		Logout:    &LogoutCommand{runner: r},
		Status:    &StatusCommand{runner: r},
		Serve:     &ServeCommand{runner: r},
	}
	_, err := flags.ParseArgs(options, args)
	return err
}

func (r *Runner) client(options *SessionOptions) (*authsession.Client, error) {
	if options.ConfigURL != "" {
		loaded, err := authsession.LoadOptions(r.ctx, options.ConfigURL)
		if err != nil {
			return nil, err
		}
		options.Options.Merge(loaded)
	}
	if r.logger != nil {
		options.Logger = r.logger
	}
	options.Navigator = navigation.Func(func(ctx context.Context, path string) {
		fmt.Fprintf(r.writer, "navigate: %v\n", path)
	})
	return authsession.New(r.ctx, &options.Options)
}

func (r *Runner) printState(state session.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.writer, "%s\n", data)
	return err
}

// Execute runs login
func (c *LoginCommand) Execute(args []string) error {
	client, err := c.runner.client(&c.SessionOptions)
	if err != nil {
		return err
	}
	defer client.Close()
	if err = client.Login(c.runner.ctx, c.Email, c.Password); err != nil {
		return err
	}
	client.Sessions.Verify(c.runner.ctx)
	return c.runner.printState(client.Sessions.State())
}

// Execute runs establish
func (c *EstablishCommand) Execute(args []string) error {
	client, err := c.runner.client(&c.SessionOptions)
	if err != nil {
		return err
	}
	defer client.Close()
	if err = client.Sessions.Establish(c.runner.ctx, c.Args.Token); err != nil {
		return err
	}
	return c.runner.printState(client.Sessions.State())
}

// Execute runs verify
func (c *VerifyCommand) Execute(args []string) error {
	client, err := c.runner.client(&c.SessionOptions)
	if err != nil {
		return err
	}
	defer client.Close()
	verified := client.Sessions.Verify(c.runner.ctx)
	if err = c.runner.printState(client.Sessions.State()); err != nil {
		return err
	}
	if !verified {
		return ErrNotAuthenticated
	}
	return nil
}

// Execute runs logout
func (c *LogoutCommand) Execute(args []string) error {
	client, err := c.runner.client(&c.SessionOptions)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.Sessions.Terminate(c.runner.ctx)
}

// Execute runs status
func (c *StatusCommand) Execute(args []string) error {
	client, err := c.runner.client(&c.SessionOptions)
	if err != nil {
		return err
	}
	defer client.Close()
	state := client.Sessions.State()
	fmt.Fprintf(c.runner.writer, "state: %v\n", state.Phase)
	if state.Token == "" {
		return nil
	}
	claims, err := token.Inspect(state.Token)
	if err != nil {
		fmt.Fprintf(c.runner.writer, "token: opaque\n")
		return nil
	}
	fmt.Fprintf(c.runner.writer, "subject: %v\n", claims.Subject)
	if !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(c.runner.writer, "expires: %v (expired: %v)\n", claims.ExpiresAt.Format(time.RFC3339), claims.Expired(time.Now()))
	}
	return nil
}

// Execute runs serve
func (c *ServeCommand) Execute(args []string) error {
	server, err := authsession.NewServer(&c.ServerOptions)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.runner.writer, "identity service listening on %v\n", server.Addr)
	return c.runner.serve(server)
}
