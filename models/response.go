// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"io"
	"net/http"
)

const (
	ContentTypeJSON        = "application/json"
	ContentTypeText        = "text/plain; charset=utf-8"
	ContentTypeEventStream = "text/event-stream"
)

// Response is the transport-neutral result of a server entry point. Exactly
// one of Body and Stream is set. The caller owns Stream and must close it.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Stream      io.ReadCloser
}

// IsStream reports whether the response body is streamed.
func (r Response) IsStream() bool {
	return r.Stream != nil
}

// Close releases the stream, if any.
func (r Response) Close() error {
	if r.Stream == nil {
		return nil
	}
	return r.Stream.Close()
}

// JSONResponse encodes v as a JSON response with the given status.
func JSONResponse(status int, v any) (Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: status, ContentType: ContentTypeJSON, Body: body}, nil
}

// RawJSONResponse wraps an already encoded JSON body.
func RawJSONResponse(status int, body []byte) Response {
	return Response{StatusCode: status, ContentType: ContentTypeJSON, Body: body}
}

// TextResponse wraps a plain text body with status 200.
func TextResponse(text string) Response {
	return Response{StatusCode: http.StatusOK, ContentType: ContentTypeText, Body: []byte(text)}
}

// StreamResponse wraps a server-sent events stream with status 200.
func StreamResponse(stream io.ReadCloser) Response {
	return Response{StatusCode: http.StatusOK, ContentType: ContentTypeEventStream, Stream: stream}
}
