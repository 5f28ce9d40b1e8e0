package utils

import (
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between the gateway, its
// clients and the inference engine.
const TraceIDHeader = "X-Trace-ID"

// SubjectHeader carries the authenticated client subject to the engine.
const SubjectHeader = "X-Forwarded-User"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Every request made with a context that carries a trace id (see
// [WithTraceID]) is sent with the [TraceIDHeader] header, so engine logs can
// be correlated with gateway logs. An authenticated subject (see
// [GetSubjectFromContext]) is forwarded the same way in [SubjectHeader].
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get("http://127.0.0.1:8001/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New()
	client.OnBeforeRequest(propagateTraceID)
	client.OnBeforeRequest(propagateSubject)
	return &HTTPClient{Client: client}
}

func propagateTraceID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(TraceIDHeader) != "" {
		return nil
	}
	if traceID, ok := GetTraceIDFromContext(r.Context()); ok && traceID != "" {
		r.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}

func propagateSubject(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(SubjectHeader) != "" {
		return nil
	}
	if subject, ok := GetSubjectFromContext(r.Context()); ok {
		r.SetHeader(SubjectHeader, subject)
	}
	return nil
}
