package adp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"talentlms-sync/internal/config"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New builds an ADP client. Auth is OAuth2 client credentials; when cert/key
// paths are configured the token exchange and the API calls both ride a mutual
// TLS transport (ADP rejects plain clients on production tenants).
func New(cfg config.Config) (*Client, error) {
	if cfg.ADPClientID == "" || cfg.ADPClientSecret == "" {
		return nil, errors.New("adp: missing env ADP_CLIENT_ID / ADP_CLIENT_SECRET")
	}

	tr := &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if cfg.ADPCertFile != "" || cfg.ADPKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ADPCertFile, cfg.ADPKeyFile)
		if err != nil {
			return nil, fmt.Errorf("adp: load client certificate: %w", err)
		}
		tr.TLSClientConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	base := &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ADPClientID,
		ClientSecret: cfg.ADPClientSecret,
		TokenURL:     cfg.ADPTokenURL,
	}

	// Token requests must use the same (possibly mTLS) transport as the API.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := cc.Client(ctx)
	httpClient.Timeout = timeout

	return &Client{
		BaseURL: strings.TrimRight(cfg.ADPBaseURL, "/"),
		HTTP:    httpClient,
	}, nil
}
