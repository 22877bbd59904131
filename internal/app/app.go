package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/samvad-hq/samvad-httpkit/internal/config"
	"github.com/samvad-hq/samvad-httpkit/pkg/httpclient"
)

// App drives one CLI invocation. It builds the engine from config, wraps
// it in the request facade, and executes the requested URLs: a single
// URL goes through the synchronous path, multiple URLs fan out through
// the asynchronous one.
type App struct {
	cfg    *config.Config
	client *httpclient.Client
	log    *zap.SugaredLogger
	out    io.Writer
}

// New builds an App. Engine policy (timeout, default User-Agent) comes
// from config and lives on the engine, not on the facade.
func New(cfg *config.Config, log *zap.SugaredLogger, out io.Writer) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if out == nil {
		out = os.Stdout
	}

	engine := resty.New()
	engine.SetTimeout(cfg.RequestTimeout)
	if cfg.UserAgent != "" {
		engine.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &App{
		cfg:    cfg,
		client: httpclient.New(httpclient.WithEngine(engine), httpclient.WithLogger(log)),
		log:    log,
		out:    out,
	}, nil
}

// Run executes one parsed invocation.
func (a *App) Run(ctx context.Context, opts *Options) error {
	method, err := resolveMethod(opts)
	if err != nil {
		return err
	}
	header, err := buildHeader(opts)
	if err != nil {
		return err
	}
	body, err := resolveBody(opts)
	if err != nil {
		return err
	}

	if len(opts.URLs) == 1 {
		return a.runSync(ctx, method, opts.URLs[0], header, body)
	}
	return a.runAsync(ctx, method, opts.URLs, header, body)
}

func (a *App) runSync(ctx context.Context, method, url string, header http.Header, body []byte) error {
	var resp *httpclient.Response
	var err error

	switch method {
	case http.MethodGet:
		resp, err = a.client.Get(ctx, url, header)
	case http.MethodPost:
		resp, err = a.client.Post(ctx, url, header, body)
	}
	if err != nil {
		return err
	}

	a.log.Infow("response", "url", url, "status", resp.StatusCode(), "bytes", len(resp.Body()))
	_, err = a.out.Write(resp.Body())
	return err
}

func (a *App) runAsync(ctx context.Context, method string, urls []string, header http.Header, body []byte) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed int

	cb := httpclient.CallbackFuncs{
		Response: func(sent httpclient.Sent, resp *httpclient.Response) {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(a.out, "%d %s\n", resp.StatusCode(), sent.URL)
			_, _ = a.out.Write(resp.Body())
			fmt.Fprintln(a.out)
		},
		Error: func(sent httpclient.Sent, err error) {
			defer wg.Done()
			a.log.Errorw("request failed", "url", sent.URL, "error", err)
			mu.Lock()
			failed++
			mu.Unlock()
		},
	}

	for _, u := range urls {
		wg.Add(1)
		switch method {
		case http.MethodGet:
			a.client.GetAsync(ctx, u, header, cb)
		case http.MethodPost:
			a.client.PostAsync(ctx, u, header, body, cb)
		}
	}
	wg.Wait()

	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(urls))
	}
	return nil
}
