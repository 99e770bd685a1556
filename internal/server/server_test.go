package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proseamp/proseamp/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(config.Default(), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func handleJSON(t *testing.T, s *Server, raw string) Response {
	t.Helper()
	return s.Handle(context.Background(), []byte(raw))
}

func TestHandleInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"method":`},
		{"unknown method", `{"id":"1","method":"transmogrify","params":{"text":"hi"}}`},
		{"missing params", `{"id":"1","method":"analyze_text"}`},
		{"missing text", `{"id":"1","method":"analyze_text","params":{}}`},
		{"text not a string", `{"id":"1","method":"analyze_text","params":{"text":42}}`},
		{"enhance text not a string", `{"id":"1","method":"enhance_text","params":{"text":true}}`},
		{"target below range", `{"id":"1","method":"enhance_text","params":{"text":"hello there","expansionTarget":99}}`},
		{"target above range", `{"id":"1","method":"custom_enhance_text","params":{"text":"hello there","expansionTarget":501}}`},
	}
	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handleJSON(t, s, tt.raw)
			require.NotNil(t, resp.Error, "expected an error response")
			assert.Equal(t, CodeInvalidInput, resp.Error.Code)
			assert.Empty(t, resp.Result)
		})
	}
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t)
	resp := handleJSON(t, s, `{"id":"a1","method":"analyze_text","params":{"text":"Sarah walked. She looked at the statue. It was old."}}`)

	require.Nil(t, resp.Error)
	assert.Equal(t, "a1", resp.ID)
	assert.Contains(t, resp.Result, "# Text Analysis Report")
	assert.Contains(t, resp.Result, "**Scene type:** exposition")
	assert.Contains(t, resp.Result, "**Point of view:** third-person")
}

func TestHandleAnalyzeEmptyTextIsValid(t *testing.T) {
	// Empty string is present and well-typed; only absence is an error.
	s := newTestServer(t)
	resp := handleJSON(t, s, `{"id":"a2","method":"analyze_text","params":{"text":""}}`)
	require.Nil(t, resp.Error)
	assert.Contains(t, resp.Result, "**Words:** 0")
}

func TestHandleEnhance(t *testing.T) {
	s := newTestServer(t)
	resp := handleJSON(t, s, `{"id":"e1","method":"enhance_text","params":{"text":"Sarah walked into the room.","expansionTarget":150}}`)

	require.Nil(t, resp.Error)
	assert.Contains(t, resp.Result, "## Enhancement Summary")
	assert.Contains(t, resp.Result, "target 150%")
}

func TestHandleCustomEnhanceAllDisabled(t *testing.T) {
	text := "Sarah walked into the room."
	params := map[string]any{
		"text":                        text,
		"enableGoldenShadow":          false,
		"enableEnvironmental":         false,
		"enableActionScene":           false,
		"enableProseSmoother":         false,
		"enableRepetitionElimination": false,
	}
	raw, err := json.Marshal(map[string]any{"id": "c1", "method": "custom_enhance_text", "params": params})
	require.NoError(t, err)

	s := newTestServer(t)
	resp := s.Handle(context.Background(), raw)

	require.Nil(t, resp.Error)
	assert.True(t, strings.HasPrefix(resp.Result, text+"\n\n---"),
		"disabled techniques must leave the prose untouched, got:\n%s", resp.Result)
	assert.Contains(t, resp.Result, "**Techniques applied:** none")
	// The custom path defaults to a 150% target.
	assert.Contains(t, resp.Result, "target 150%")
}

func TestHandleAssignsRequestID(t *testing.T) {
	s := newTestServer(t)
	resp := handleJSON(t, s, `{"method":"analyze_text","params":{"text":"hello there world"}}`)
	require.Nil(t, resp.Error)
	assert.NotEmpty(t, resp.ID)
}

func TestHandleRejectsOversizedText(t *testing.T) {
	cfg := config.Default()
	cfg.Enhance.MaxInputBytes = 2048
	s := New(cfg, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	big := strings.Repeat("word ", 1024)
	raw, err := json.Marshal(map[string]any{"method": "analyze_text", "params": map[string]any{"text": big}})
	require.NoError(t, err)

	resp := s.Handle(context.Background(), raw)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidInput, resp.Error.Code)
}

func TestServeRoundTrip(t *testing.T) {
	var in bytes.Buffer
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&in, `{"id":"req-%d","method":"analyze_text","params":{"text":"Sarah walked. She looked at the statue."}}`+"\n", i)
	}
	// Blank lines are skipped, not answered.
	in.WriteString("\n")

	var out bytes.Buffer
	s := newTestServer(t)
	require.NoError(t, s.Serve(context.Background(), &in, &out))

	scanner := bufio.NewScanner(&out)
	var responses []Response
	for scanner.Scan() {
		var resp Response
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	require.Len(t, responses, 3)
	for i, resp := range responses {
		assert.Equal(t, fmt.Sprintf("req-%d", i), resp.ID)
		assert.Nil(t, resp.Error)
		assert.NotEmpty(t, resp.Result)
	}
}

func TestFailedCallDoesNotAffectNext(t *testing.T) {
	s := newTestServer(t)

	bad := handleJSON(t, s, `{"id":"x","method":"analyze_text","params":{"text":7}}`)
	require.NotNil(t, bad.Error)

	good := handleJSON(t, s, `{"id":"y","method":"analyze_text","params":{"text":"still works fine"}}`)
	require.Nil(t, good.Error)
	assert.NotEmpty(t, good.Result)
}
