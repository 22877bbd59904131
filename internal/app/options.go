package app

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Options captures one parsed CLI invocation.
type Options struct {
	Method      string
	Headers     []string // raw curl-style "Name: value" flags, in order
	HeadersFile string
	Data        string // literal body, or @path to read a file
	Verbose     bool
	URLs        []string
}

// ParseArgs parses command-line arguments into Options.
func ParseArgs(args []string) (*Options, error) {
	fs := pflag.NewFlagSet("httpkit", pflag.ContinueOnError)

	opts := &Options{}
	fs.StringVarP(&opts.Method, "request", "X", http.MethodGet, "HTTP method (GET or POST)")
	fs.StringArrayVarP(&opts.Headers, "header", "H", nil, `extra header as "Name: value", repeatable`)
	fs.StringVar(&opts.HeadersFile, "headers-file", "", "YAML file mapping header names to value lists")
	fs.StringVarP(&opts.Data, "data", "d", "", "POST body; @file reads the body from file")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "log request and response details")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.URLs = fs.Args()
	if len(opts.URLs) == 0 {
		return nil, fmt.Errorf("at least one URL is required")
	}
	return opts, nil
}

// resolveMethod applies the curl convention: -d without an explicit
// method switches to POST. Anything beyond GET/POST is rejected early,
// before the facade sees it.
func resolveMethod(opts *Options) (string, error) {
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if opts.Data != "" && method == http.MethodGet {
		method = http.MethodPost
	}
	switch method {
	case http.MethodGet, http.MethodPost:
		return method, nil
	default:
		return "", fmt.Errorf("unsupported method %q (only GET and POST)", opts.Method)
	}
}

// resolveBody returns the request body for POST calls. A leading @ reads
// the body from the named file, as curl does.
func resolveBody(opts *Options) ([]byte, error) {
	if opts.Data == "" {
		return nil, nil
	}
	if path, ok := strings.CutPrefix(opts.Data, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read body file: %w", err)
		}
		return data, nil
	}
	return []byte(opts.Data), nil
}
