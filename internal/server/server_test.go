package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// serveLines feeds lines to s.Serve and decodes one response per output line.
func serveLines(t *testing.T, s *Server, lines ...string) []MCPResponse {
	t.Helper()

	var out bytes.Buffer
	if err := s.Serve(strings.NewReader(strings.Join(lines, "\n")), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	var responses []MCPResponse
	dec := json.NewDecoder(&out)
	for dec.More() {
		var resp MCPResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestNew(t *testing.T) {
	s := New(Config{})
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if s.version != "dev" {
		t.Errorf("default version: got %s, want dev", s.version)
	}
	if s.debug {
		t.Error("debug should be off by default")
	}
}

func TestServe_Routing(t *testing.T) {
	tests := []struct {
		name      string
		request   string
		wantID    interface{}
		wantCode  int
		wantField string
	}{
		{"initialize", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`, float64(1), 0, "protocolVersion"},
		{"string id", `{"jsonrpc":"2.0","id":"ping-1","method":"ping"}`, "ping-1", 0, ""},
		{"tools list", `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`, float64(2), 0, "tools"},
		{"unknown method", `{"jsonrpc":"2.0","id":3,"method":"image/rotate"}`, float64(3), -32601, ""},
		{"malformed json", `{"jsonrpc":`, nil, -32700, ""},
		{"unknown tool", `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"image_rotate"}}`, float64(4), -32000, ""},
		{"bad call params", `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":[1,2]}`, float64(5), -32602, ""},
		{"ragged grid", `{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{"name":"grid_thin","arguments":{"rows":["11","1"]}}}`, float64(6), -32000, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := serveLines(t, New(Config{}), tt.request)
			if len(responses) != 1 {
				t.Fatalf("expected 1 response, got %d", len(responses))
			}
			resp := responses[0]

			if resp.JSONRPC != "2.0" {
				t.Errorf("JSONRPC: got %s, want 2.0", resp.JSONRPC)
			}
			if resp.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", resp.ID, resp.ID, tt.wantID, tt.wantID)
			}

			if tt.wantCode != 0 {
				if resp.Error == nil || resp.Error.Code != tt.wantCode {
					t.Fatalf("expected error code %d, got %+v", tt.wantCode, resp.Error)
				}
				return
			}
			if resp.Error != nil {
				t.Fatalf("Unexpected error: %+v", resp.Error)
			}
			if tt.wantField != "" {
				result, ok := resp.Result.(map[string]interface{})
				if !ok {
					t.Fatalf("Result should be an object, got %T", resp.Result)
				}
				if _, ok := result[tt.wantField]; !ok {
					t.Errorf("Result is missing %q: %v", tt.wantField, result)
				}
			}
		})
	}
}

func TestServe_ToolsListNames(t *testing.T) {
	responses := serveLines(t, New(Config{}), `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}

	result := responses[0].Result.(map[string]interface{})
	tools, ok := result["tools"].([]interface{})
	if !ok {
		t.Fatalf("tools should be a list, got %T", result["tools"])
	}

	var names []string
	for _, tool := range tools {
		names = append(names, tool.(map[string]interface{})["name"].(string))
	}
	want := "image_load,image_dimensions,image_binarize,image_thin,grid_thin,skeleton_analyze"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("tool names: got %s, want %s", got, want)
	}
}

func TestServe_InitializeReportsVersion(t *testing.T) {
	responses := serveLines(t, New(Config{Version: "1.2.3"}), `{"jsonrpc":"2.0","id":"init-1","method":"initialize"}`)
	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}

	result := responses[0].Result.(map[string]interface{})
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}
	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be an object")
	}
	if serverInfo["name"] != "imgthin" || serverInfo["version"] != "1.2.3" {
		t.Errorf("serverInfo: got %v", serverInfo)
	}
}

func TestServe_Session(t *testing.T) {
	responses := serveLines(t, New(Config{}),
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"grid_thin","arguments":{"rows":["111","111","111"]}}}`,
	)

	// The notification and the blank line get no response.
	if len(responses) != 4 {
		t.Fatalf("expected 4 responses, got %d", len(responses))
	}
	if responses[1].Error == nil || responses[1].Error.Code != -32700 {
		t.Errorf("malformed line should produce a -32700 parse error, got %+v", responses[1])
	}
	if responses[2].ID != float64(2) || responses[2].Error != nil {
		t.Errorf("ping response: got %+v", responses[2])
	}

	data, err := json.Marshal(responses[3].Result)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if !strings.Contains(string(data), `\"010\"`) {
		t.Errorf("grid_thin response should contain the thinned middle row, got %s", data)
	}
}

func TestServe_LongLine(t *testing.T) {
	row := strings.Repeat("1", 100000)
	req := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"grid_thin","arguments":{"rows":["` + row + `"]}}}`

	responses := serveLines(t, New(Config{}), req)
	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}
	if responses[0].Error != nil {
		t.Errorf("a wide grid should be accepted, got %+v", responses[0].Error)
	}
}

func TestErrorResponse_OmitsEmptyData(t *testing.T) {
	s := New(Config{})
	data, err := json.Marshal(s.errorResponse(7, -32601, "Method not found: x", ""))
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if strings.Contains(string(data), `"data"`) {
		t.Errorf("empty data should be omitted, got %s", data)
	}
}
