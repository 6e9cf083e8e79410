package main

import (
	"net"
	"net/http"
	"runtime"
	"runtime/debug"
	"time"
)

func userAgent() string {
	version := "devel"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	return "fetchdriver " + version
}

func defaultTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
			DualStack: true,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}
}

func newUserAgentClient(agent string) *http.Client {
	return &http.Client{
		Transport: &uaTransport{
			Transport: defaultTransport(),
			agent:     agent,
		},
	}
}

type uaTransport struct {
	*http.Transport
	agent string
}

func (t *uaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if values := req.Header.Values("User-Agent"); len(values) == 0 {
		req.Header.Set("User-Agent", t.agent)
	}
	return t.Transport.RoundTrip(req)
}
