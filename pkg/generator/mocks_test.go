package generator

import (
	"bytes"
	"context"
	"io"
	"time"

	"google.golang.org/genai"
)

// --- Mocks ---

// pngHeader は http.DetectContentType が image/png と判定する最小バイト列です。
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")

type mockImageModel struct {
	called     int
	lastModel  string
	lastParts  []*genai.Part
	lastConfig *genai.GenerateContentConfig

	resp *genai.GenerateContentResponse
	err  error
}

func (m *mockImageModel) GenerateImage(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.called++
	m.lastModel = model
	if len(contents) > 0 {
		m.lastParts = contents[0].Parts
	}
	m.lastConfig = config
	return m.resp, m.err
}

// inlineImageResponse は、画像バイト列を1つ含む成功レスポンスを組み立てます。
func inlineImageResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{Text: "here is your image"},
					{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
				},
			},
		}},
	}
}

type mockReader struct {
	opened int
	data   map[string][]byte
	err    error
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.opened++
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.data[uri])), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}

type mockHTTPClient struct {
	called int
	data   []byte
	err    error
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.called++
	return m.data, m.err
}

type mockCache struct {
	data map[string]any
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]any)}
}

func (m *mockCache) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	m.data[key] = value
}
