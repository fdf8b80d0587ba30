package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// serve feeds lines to a new server and decodes every response it writes.
func serve(t *testing.T, lines ...string) []MCPResponse {
	t.Helper()

	var out bytes.Buffer
	if err := New().Serve(strings.NewReader(strings.Join(lines, "\n")), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	dec := json.NewDecoder(&out)
	var responses []MCPResponse
	for dec.More() {
		var resp MCPResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		responses = append(responses, resp)
	}
	return responses
}

// toolCall builds a tools/call line.
func toolCall(id int, name string, args interface{}) string {
	line, _ := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "tools/call",
		"params":  map[string]interface{}{"name": name, "arguments": args},
	})
	return string(line)
}

// toolOutput decodes the text content of a successful tools/call response.
func toolOutput(t *testing.T, resp MCPResponse) map[string]interface{} {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	var wrapped struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	raw, _ := json.Marshal(resp.Result)
	if err := json.Unmarshal(raw, &wrapped); err != nil || len(wrapped.Content) != 1 {
		t.Fatalf("unexpected result: %s", raw)
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(wrapped.Content[0].Text), &out); err != nil {
		t.Fatalf("tool text is not JSON: %v", err)
	}
	return out
}

func TestNew_RegistersEveryTool(t *testing.T) {
	s := New()
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}

	defs := GetToolDefinitions()
	if len(s.tools) != len(defs) {
		t.Errorf("registered %d tools, %d defined", len(s.tools), len(defs))
	}
	for _, def := range defs {
		tool, ok := s.tools[def.Name]
		if !ok {
			t.Errorf("%s not registered", def.Name)
			continue
		}
		if tool.run == nil {
			t.Errorf("%s has no handler", def.Name)
		}
	}
}

func TestServe_Session(t *testing.T) {
	responses := serve(t,
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`   `,
		`{"jsonrpc":"2.0","id":"p","method":"ping"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/list"}`,
	)
	if len(responses) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(responses))
	}

	var init struct {
		ProtocolVersion string `json:"protocolVersion"`
		ServerInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
	}
	raw, _ := json.Marshal(responses[0].Result)
	if err := json.Unmarshal(raw, &init); err != nil {
		t.Fatalf("initialize result: %v", err)
	}
	if init.ProtocolVersion != protocolVersion || init.ServerInfo.Name != serverName || init.ServerInfo.Version != Version {
		t.Errorf("initialize: got %+v", init)
	}

	if responses[1].ID != "p" || responses[1].Error != nil {
		t.Errorf("ping: got %+v", responses[1])
	}

	var list struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	raw, _ = json.Marshal(responses[2].Result)
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("tools/list result: %v", err)
	}
	if len(list.Tools) != len(GetToolDefinitions()) {
		t.Errorf("tools/list: got %d tools, want %d", len(list.Tools), len(GetToolDefinitions()))
	}
}

func TestServe_Errors(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantID   interface{}
		wantCode int
		wantData string
	}{
		{"parse error", `not json`, nil, codeParseError, ""},
		{"unknown method", `{"jsonrpc":"2.0","id":1,"method":"resources/list"}`, float64(1), codeMethodNotFound, ""},
		{"params not an object", `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":"color_blend"}`, float64(2), codeInvalidParams, ""},
		{"unknown tool", toolCall(3, "color_mix", nil), float64(3), codeInvalidParams, "color_mix"},
		{"arguments not an object", toolCall(4, "color_blend", []int{1, 2}), float64(4), codeInvalidParams, "color_blend"},
		{"missing required argument", toolCall(5, "color_convert", map[string]interface{}{}), float64(5), codeInvalidParams, `"color"`},
		{"bad color", toolCall(6, "color_convert", map[string]interface{}{"color": "#12345"}), float64(6), codeToolFailed, ""},
		{"unknown operator", toolCall(7, "color_blend", map[string]interface{}{"operator": "screen"}), float64(7), codeToolFailed, "screen"},
		{"missing image", toolCall(8, "image_load", map[string]interface{}{"path": "/nonexistent.png"}), float64(8), codeToolFailed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := serve(t, tt.line)
			if len(responses) != 1 {
				t.Fatalf("expected 1 response, got %d", len(responses))
			}
			resp := responses[0]
			if resp.ID != tt.wantID {
				t.Errorf("ID: got %v, want %v", resp.ID, tt.wantID)
			}
			if resp.Error == nil {
				t.Fatalf("expected error %d, got result %v", tt.wantCode, resp.Result)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code: got %d, want %d (%s)", resp.Error.Code, tt.wantCode, resp.Error.Data)
			}
			if data, _ := resp.Error.Data.(string); !strings.Contains(data, tt.wantData) {
				t.Errorf("data %q should contain %q", data, tt.wantData)
			}
		})
	}
}

func TestServe_ToolResults(t *testing.T) {
	responses := serve(t,
		toolCall(1, "color_blend", map[string]interface{}{
			"operator": "multiply", "source": "red", "destination": "#808080",
		}),
		toolCall(2, "color_blend", nil),
		toolCall(3, "colorband_sample", map[string]interface{}{
			"stops": []map[string]interface{}{
				{"color": "black", "param": 0},
				{"color": "white", "param": 1},
			},
			"count": 3,
		}),
		toolCall(4, "color_convert", map[string]interface{}{"color": "#ff000080"}),
	)
	if len(responses) != 4 {
		t.Fatalf("expected 4 responses, got %d", len(responses))
	}

	blended := toolOutput(t, responses[0])
	if blended["operator"] != "multiply" {
		t.Errorf("operator: got %v", blended["operator"])
	}
	if hex := blended["result"].(map[string]interface{})["hex"]; hex != "#800000ff" {
		t.Errorf("red multiply gray: got %v, want #800000ff", hex)
	}

	defaults := toolOutput(t, responses[1])
	if hex := defaults["result"].(map[string]interface{})["hex"]; hex != "#000000ff" {
		t.Errorf("default blend: got %v, want #000000ff", hex)
	}

	sampled := toolOutput(t, responses[2])
	want := []interface{}{"#000000ff", "#808080ff", "#ffffffff"}
	if diff := cmp.Diff(want, sampled["samples"]); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}

	converted := toolOutput(t, responses[3])
	if converted["hex"] != "#ff000080" {
		t.Errorf("color_convert hex: got %v", converted["hex"])
	}
}
