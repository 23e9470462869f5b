// Package apis holds the remote service clients.
package apis

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"weatherdash/logger"
)

const userAgent = "weatherdash/1.0"

// NewClient builds the resty client a provider reuses for all its requests.
// A zero timeout leaves the transport default in place.
func NewClient(provider string, timeout time.Duration) *resty.Client {
	client := resty.New().SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.WithFields(logrus.Fields{
			"provider": provider,
			"method":   req.Method,
			"url":      req.URL,
		}).Debug("outbound request")
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.WithFields(logrus.Fields{
			"provider": provider,
			"status":   resp.StatusCode(),
			"duration": resp.Time(),
		}).Debug("response received")
		return nil
	})

	return client
}
