package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/VENUCODE/paint-ai/internal/domain"
)

const DefaultImagesEditURL = "https://api.openai.com/v1/images/edits"

// ImagesClient posts image edit requests to an OpenAI-compatible
// images/edits endpoint.
type ImagesClient struct {
	HTTPClient *http.Client
	Endpoint   string
	Model      string
}

func NewImagesClient(httpClient *http.Client, endpoint, model string) *ImagesClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultImagesEditURL
	}
	if model == "" {
		model = domain.DefaultImageModel
	}
	return &ImagesClient{HTTPClient: httpClient, Endpoint: endpoint, Model: model}
}

func (c *ImagesClient) Edit(ctx context.Context, image []byte, prompt, credential string) (json.RawMessage, error) {
	body, contentType, err := c.buildForm(image, prompt)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeInternal, "failed to build image edit form", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create edit request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call image edit api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image edit response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{Service: "image edit api", StatusCode: resp.StatusCode, Body: respBody}
	}

	if !json.Valid(respBody) {
		return nil, domain.NewDomainError(domain.ErrCodeExternal, "image edit api returned invalid json", nil)
	}

	return json.RawMessage(respBody), nil
}

func (c *ImagesClient) buildForm(image []byte, prompt string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	// CreateFormFile would label the part application/octet-stream.
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, domain.EditImageFileName))
	header.Set("Content-Type", domain.EditImageMimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create image part: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, "", fmt.Errorf("write image part: %w", err)
	}

	fields := [][2]string{
		{"model", c.Model},
		{"prompt", prompt},
		{"n", strconv.Itoa(domain.EditImageCount)},
	}
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f[0], err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}
