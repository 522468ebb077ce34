package ihealth

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

// apiRequest describes one call through the authenticated pipeline.
// Constructed per endpoint method; stateless, so it can be rebuilt for the
// pipeline's auth retry.
type apiRequest struct {
	method string
	path   string
	query  url.Values
	form   url.Values     // urlencoded body for POST/PUT
	upload *uploadPayload // multipart body, POST only
	format api.Format     // zero value keeps the default Accept header
}

// uploadPayload is a multipart file part plus its accompanying form fields.
// Content is held as bytes so a retried request can rebuild the body.
type uploadPayload struct {
	fieldName string
	filename  string
	content   []byte
	fields    url.Values
}

// build assembles a fresh http.Request for one attempt. Authorization,
// Accept and User-Agent are stamped by the pipeline per attempt.
func (r *apiRequest) build(ctx context.Context, baseURL string) (*http.Request, error) {
	target := baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case r.upload != nil:
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for key, values := range r.upload.fields {
			for _, value := range values {
				if err := w.WriteField(key, value); err != nil {
					return nil, err
				}
			}
		}
		part, err := w.CreateFormFile(r.upload.fieldName, r.upload.filename)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(r.upload.content); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		body = buf
		contentType = w.FormDataContentType()
	case len(r.form) > 0:
		body = strings.NewReader(r.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}
