package resthttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
)

const (
	// HeaderKeyRequestID request id header key
	headerKeyRequestID = logger.RequestIdHeaderKey
)

var runOnce sync.Once
var restyClient *resty.Client

// Client resty client
func Client() *resty.Client {
	runOnce.Do(func() {
		restyClient = resty.New().
			SetHeader("Content-Type", "application/json").
			SetHeader("Charset", "utf-8").
			SetTimeout(10 * time.Second)
	})

	return restyClient
}

// Request new resty request
func Request(ctx context.Context) *resty.Request {
	return Client().R().SetContext(ctx)
}

// WithRequestID resty request with request id
func WithRequestID(ctx context.Context, requestID string) *resty.Request {
	return Request(ctx).SetHeader(headerKeyRequestID, requestID)
}

// Execute do network request
func Execute(request *resty.Request, method, url string, body interface{}, resp interface{}) (int, error) {
	log := logger.FromContext(request.Context()).WithField("url", url)
	log.Debugln("execute", method)

	if body != nil {
		request = request.SetBody(body)
	}

	r, err := request.Execute(strings.ToUpper(method), url)
	if err != nil {
		return 0, err
	}

	log.Debugln("resp.status", r.Status())

	return r.StatusCode(), ParseResponse(r, resp)
}

// ParseResponse parse response
func ParseResponse(r *resty.Response, obj interface{}) error {
	//fail
	if !r.IsSuccess() {
		return fmt.Errorf("%s: %s", r.Status(), strings.TrimSpace(string(r.Body())))
	}

	//success
	if obj != nil {
		if err := json.Unmarshal(r.Body(), obj); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}

type (
	graphRequest struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables,omitempty"`
	}

	graphError struct {
		Message string `json:"message"`
	}

	graphResponse struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphError    `json:"errors,omitempty"`
	}
)

// requestOf forwards the request id the logger middleware put into ctx
func requestOf(ctx context.Context) *resty.Request {
	if id, ok := logger.FromContext(ctx).Data[logger.RequestIdLogKey].(string); ok && id != "" {
		return WithRequestID(ctx, id)
	}

	return Request(ctx)
}

// ErrGraphQL graphql endpoint responded with errors
var ErrGraphQL = errors.New("graphql")

// Query post a graphql query to endpoint and decode its data into resp
func Query(ctx context.Context, endpoint, query string, variables map[string]interface{}, resp interface{}) error {
	var body graphResponse
	if _, err := Execute(requestOf(ctx), "POST", endpoint, graphRequest{Query: query, Variables: variables}, &body); err != nil {
		return err
	}

	if len(body.Errors) > 0 {
		msgs := make([]string, len(body.Errors))
		for idx, e := range body.Errors {
			msgs[idx] = e.Message
		}

		return fmt.Errorf("%w: %s", ErrGraphQL, strings.Join(msgs, "; "))
	}

	if resp == nil || len(body.Data) == 0 {
		return nil
	}

	return json.Unmarshal(body.Data, resp)
}
