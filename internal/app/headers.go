package app

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseHeaderFlags turns repeated curl-style "Name: value" flags into a
// multi-valued header map, keeping values in the order the flags appear.
func parseHeaderFlags(raw []string) (http.Header, error) {
	header := http.Header{}
	for _, item := range raw {
		name, value, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("malformed header %q (want \"Name: value\")", item)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("malformed header %q (empty name)", item)
		}
		header.Add(name, strings.TrimSpace(value))
	}
	return header, nil
}

// loadHeadersFile reads a YAML file mapping header names to value lists:
//
//	X-Test:
//	  - "1"
//	  - "2"
func loadHeadersFile(path string) (http.Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read headers file: %w", err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse headers file: %w", err)
	}

	header := http.Header{}
	for name, values := range raw {
		for _, v := range values {
			header.Add(name, v)
		}
	}
	return header, nil
}

// buildHeader assembles the outbound header map: file entries first,
// then -H flags appended on top.
func buildHeader(opts *Options) (http.Header, error) {
	header := http.Header{}
	if opts.HeadersFile != "" {
		fromFile, err := loadHeadersFile(opts.HeadersFile)
		if err != nil {
			return nil, err
		}
		header = fromFile
	}

	fromFlags, err := parseHeaderFlags(opts.Headers)
	if err != nil {
		return nil, err
	}
	for name, values := range fromFlags {
		for _, v := range values {
			header.Add(name, v)
		}
	}
	return header, nil
}
