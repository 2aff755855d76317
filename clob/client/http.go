package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/roushou/polyte/clob/types"
	"github.com/roushou/polyte/pkg/ratelimit"
)

// authLevel selects the request signing scheme.
type authLevel int

const (
	authNone authLevel = iota // public endpoint
	authL1                    // wallet signature headers
	authL2                    // HMAC credential headers
)

// requestSpec describes one REST call.
type requestSpec struct {
	method   string
	endpoint string            // path only; the L2 signature covers this, never the query
	auth     authLevel
	params   map[string]string
	body     any
	nonce    int64 // L1 only
}

// do runs a request and decodes a 2xx JSON response into out. The body is
// serialized once so the bytes covered by the L2 signature are exactly the
// bytes sent.
func (c *Client) do(ctx context.Context, spec requestSpec, out any) error {
	if c.limits != nil {
		if err := c.limits.Wait(ctx, limitClass(spec.endpoint)); err != nil {
			return types.WrapError(types.KindTransport, err, "rate limit wait")
		}
	}

	req := c.http.R().SetContext(ctx)
	req.SetHeader("Accept", "*/*")
	req.SetHeader("User-Agent", "polyte")

	var bodyStr string
	if spec.body != nil {
		raw, err := json.Marshal(spec.body)
		if err != nil {
			return types.WrapError(types.KindValidation, err, "encode request body")
		}
		bodyStr = string(raw)
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(raw)
	}

	if spec.params != nil {
		req.SetQueryParams(spec.params)
	}

	headers, err := c.authHeaders(spec, bodyStr)
	if err != nil {
		return err
	}
	req.SetHeaders(headers)

	if out != nil {
		req.SetResult(out)
	}

	resp, err := c.execute(req, spec.method, spec.endpoint)
	if err != nil {
		return types.WrapError(types.KindTransport, err, spec.method+" "+spec.endpoint)
	}
	return c.checkStatus(resp, spec)
}

// limitClass buckets an endpoint into one of the exchange's rate budgets.
func limitClass(endpoint string) string {
	switch {
	case strings.HasPrefix(endpoint, "/order") || strings.HasPrefix(endpoint, "/cancel"):
		return ratelimit.ClassOrder
	case strings.HasPrefix(endpoint, "/data/"):
		return ratelimit.ClassTrades
	case strings.HasPrefix(endpoint, "/book") || strings.HasPrefix(endpoint, "/price") ||
		strings.HasPrefix(endpoint, "/midpoint") || strings.HasPrefix(endpoint, "/last-trade-price") ||
		strings.HasPrefix(endpoint, "/markets") || strings.HasPrefix(endpoint, "/tick-size") ||
		strings.HasPrefix(endpoint, "/neg-risk"):
		return ratelimit.ClassMarket
	default:
		return ""
	}
}

// authHeaders builds the signed header set for the request's auth level.
func (c *Client) authHeaders(spec requestSpec, body string) (map[string]string, error) {
	switch spec.auth {
	case authNone:
		return nil, nil
	case authL1:
		if c.account == nil {
			return nil, types.NewError(types.KindAuthentication, "no account attached")
		}
		h, err := c.account.L1Headers(c.chainID, spec.nonce, 0)
		if err != nil {
			return nil, err
		}
		return h.Map(), nil
	case authL2:
		if c.account == nil {
			return nil, types.NewError(types.KindAuthentication, "no account attached")
		}
		h, err := c.account.L2Headers(&types.L2HeaderArgs{
			Method:      spec.method,
			RequestPath: spec.endpoint,
			Body:        body,
		})
		if err != nil {
			return nil, err
		}
		return h.Map(), nil
	default:
		return nil, errors.Errorf("unknown auth level %d", spec.auth)
	}
}

func (c *Client) execute(req *resty.Request, method, endpoint string) (*resty.Response, error) {
	switch method {
	case http.MethodGet:
		return req.Get(endpoint)
	case http.MethodPost:
		return req.Post(endpoint)
	case http.MethodDelete:
		return req.Delete(endpoint)
	case http.MethodPut:
		return req.Put(endpoint)
	default:
		return nil, errors.Errorf("unsupported method: %s", method)
	}
}

// checkStatus maps non-2xx responses onto the error taxonomy. Auth rejections
// keep their own kind so callers can distinguish stale credentials from bad
// requests.
func (c *Client) checkStatus(resp *resty.Response, spec requestSpec) error {
	if resp.IsSuccess() {
		return nil
	}

	body := string(resp.Body())
	c.log.WithFields(logrus.Fields{
		"method":   spec.method,
		"endpoint": spec.endpoint,
		"status":   resp.StatusCode(),
	}).Debug("request rejected")

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return types.Errorf(types.KindAuthentication, "%s %s: %d %s", spec.method, spec.endpoint, resp.StatusCode(), body)
	default:
		return types.Errorf(types.KindValidation, "%s %s: %d %s", spec.method, spec.endpoint, resp.StatusCode(), body)
	}
}
